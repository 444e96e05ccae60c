package di

import (
	"context"
	"fmt"
	"log"
	"time"

	"dp-server/api"
	"dp-server/api/foursquare"
	"dp-server/api/ticketmaster"
	"dp-server/cache"
	"dp-server/config"
	"dp-server/dao/redis"
	"dp-server/db"
	"dp-server/server"
	"dp-server/server/handlers"
	services "dp-server/service"

	goredis "github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"
)

// Container holds all application dependencies.
type Container struct {
	RedisClient           db.RedisClient
	RedisCalendarDao      *redis.RedisCalendarDAO
	ResponseCache         cache.ResponseCache
	PlacesAPI             foursquare.PlacesAPI
	EventsAPI             ticketmaster.EventsAPI
	RecommendationService *services.RecommendationService
	WarmupService         *services.RecommendationWarmupService
	RecommendationHandler *handlers.RecommendationHandler
	MuxRouter             *mux.Router
	Router                *server.Router
	DatePlannerHttpServer *server.DatePlannerHttpServer
}

// NewContainer initializes and wires up all dependencies.
func NewContainer(env string) *Container {
	log.Printf("initializing container - env: %s", env)
	ctx := context.Background()

	// Initialize Redis Client internals
	var redisClient db.RedisClient
	if env != "prod" {
		redisClient = db.NewMockRedisClient(ctx)
		log.Printf("Using mock redis client")
	} else {
		redisInternalClient := goredis.NewClient(&goredis.Options{
			Addr:     config.REDIS_DB_ADDRESS,
			Password: config.REDIS_DB_PASSWORD,
			DB:       config.REDIS_DB,
		})

		redisClient = db.NewStandardRedisClient(ctx, redisInternalClient)
		if err := redisClient.Ping(); err != nil {
			panic(fmt.Sprintf("Failed to connect to Redis: %v", err))
		}
	}

	// Initialize Redis Calendar DAO
	redisCalendarDao := redis.NewRedisCalendarDAO(redisClient)

	// Response cache: Redis-backed in prod so warmed entries are shared
	// across instances, in-memory everywhere else.
	var responseCache cache.ResponseCache
	if env != "prod" {
		responseCache = cache.NewMemoryResponseCache()
	} else {
		responseCache = cache.NewRedisResponseCache(redisClient)
	}

	// Initialize provider API clients - mocks outside prod
	upstreamTimeout := config.UPSTREAM_CALL_TIMEOUT_SECONDS * time.Second
	var placesAPI foursquare.PlacesAPI
	var eventsAPI ticketmaster.EventsAPI
	if env != "prod" {
		placesAPI = foursquare.NewPlacesApiClientMock()
		eventsAPI = ticketmaster.NewEventsApiClientMock()
		log.Printf("Using mock provider apis")
	} else {
		log.Printf("Using prod provider apis")
		placesClient := foursquare.NewPlacesApiClient(
			api.NewHTTPClient(config.FOURSQUARE_ENDPOINT_BASE_V3, upstreamTimeout))
		placesClient.SetCredentials(config.FOURSQUARE_API_KEY)
		placesAPI = placesClient

		eventsClient := ticketmaster.NewEventsApiClient(
			api.NewHTTPClient(config.TICKETMASTER_ENDPOINT_BASE_V2, upstreamTimeout))
		eventsClient.SetCredentials(config.TICKETMASTER_API_KEY)
		eventsAPI = eventsClient
	}

	// Initialize the engine with its pure components
	recommendationService := services.NewRecommendationService(
		services.NewFoursquareVenueSource(placesAPI),
		services.NewTicketmasterEventSource(eventsAPI),
		services.NewCalendarAvailabilityService(redisCalendarDao),
		services.NewRankingEngine(),
		services.NewSlotProposer(),
		services.NewPackageGenerator(),
		responseCache,
	)

	// Initialize recommendation handler
	recommendationHandler := handlers.NewRecommendationHandler(recommendationService)

	// Initialize mux router
	muxRouter := mux.NewRouter()

	// Initialize router
	router := server.NewRouter(recommendationHandler, muxRouter)

	// initialize date planner server
	datePlannerHttpServer := server.NewDatePlannerHttpServer(router, muxRouter)

	warmupService := services.NewRecommendationWarmupService(recommendationService)

	return &Container{
		RedisClient:           redisClient,
		RedisCalendarDao:      redisCalendarDao,
		ResponseCache:         responseCache,
		PlacesAPI:             placesAPI,
		EventsAPI:             eventsAPI,
		RecommendationService: recommendationService,
		WarmupService:         warmupService,
		RecommendationHandler: recommendationHandler,
		MuxRouter:             muxRouter,
		Router:                router,
		DatePlannerHttpServer: datePlannerHttpServer,
	}
}
