package util

import (
	"fmt"
	"log"
	"os"

	"dp-server/models"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// PlotPackageBudgets generates an HTML file rendering the itemized budget of
// each generated date package as a grouped bar chart. Debugging aid only.
func PlotPackageBudgets(packages []models.DatePackage) {
	if len(packages) == 0 {
		log.Println("[Plotter] No packages to plot")
		return
	}

	categories := make([]string, 0, len(packages))
	dining := make([]opts.BarData, 0, len(packages))
	activity := make([]opts.BarData, 0, len(packages))
	transportation := make([]opts.BarData, 0, len(packages))
	taxes := make([]opts.BarData, 0, len(packages))

	for _, p := range packages {
		categories = append(categories, p.BudgetCategory)
		dining = append(dining, opts.BarData{Value: p.ItemizedBudget.Dining})
		activity = append(activity, opts.BarData{Value: p.ItemizedBudget.Activity})
		transportation = append(transportation, opts.BarData{Value: p.ItemizedBudget.Transportation})
		taxes = append(taxes, opts.BarData{Value: p.ItemizedBudget.TaxesAndTips})
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "Date Package Budgets",
			Width:     "800px",
			Height:    "600px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title: "Itemized budget per tier",
		}),
	)

	bar.SetXAxis(categories).
		AddSeries("dining", dining).
		AddSeries("activity", activity).
		AddSeries("transportation", transportation).
		AddSeries("taxes_and_tips", taxes)

	// Create an HTML file to render the chart.
	f, err := os.Create("package_budgets.html")
	if err != nil {
		log.Fatalf("Failed to create HTML file: %v", err)
	}
	defer f.Close()

	// Render the chart into the HTML file.
	if err := bar.Render(f); err != nil {
		log.Fatalf("Failed to render chart: %v", err)
	}

	fmt.Println("Package budgets chart generated: package_budgets.html")
}
