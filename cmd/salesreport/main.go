// The salesreport command demonstrates the data-analysis exercise: clean,
// join and aggregate the retail CSV trio, then print a revenue report.
package main

import (
	"flag"
	"fmt"

	"github.com/practica/exercises/internal/cli"
	"github.com/practica/exercises/internal/exercises/sales"
	"github.com/practica/exercises/internal/platform/logger"
)

func main() {
	dir := flag.String("data", "data", "directory holding online_retail.csv, products.csv and customers.csv")
	top := flag.Int("top", 5, "number of rows in the top-N tables")
	flag.Parse()

	logger.Initialize(logger.DefaultConfig())
	defer logger.Sync()

	analyzer := sales.NewAnalyzer()
	if err := analyzer.LoadFiles(*dir); err != nil {
		cli.Fail(err)
	}

	cli.Header("Data Cleaning")
	report := analyzer.Clean()
	fmt.Printf("Rows loaded:        %d\n", report.Initial)
	fmt.Printf("Missing customer:   %d\n", report.MissingCustomer)
	fmt.Printf("Invalid quantity:   %d\n", report.InvalidQuantity)
	fmt.Printf("Invalid price:      %d\n", report.InvalidPrice)
	fmt.Printf("Duplicates removed: %d\n", report.Duplicates)
	fmt.Printf("%s Rows kept: %d\n", cli.CheckMark(), report.Final)

	analyzer.Merge()

	cli.Header("Revenue Overview")
	fmt.Printf("Total revenue: %.2f\n", analyzer.TotalRevenue())

	printTable := func(title string, entries []sales.RevenueEntry) {
		cli.Header(title)
		fmt.Printf("%-32s %12s %8s\n", "Key", "Revenue", "Orders")
		cli.Rule()
		for _, e := range entries {
			fmt.Printf("%-32s %12.2f %8d\n", e.Key, e.Revenue, e.Count)
		}
	}

	printTable("Top Products", analyzer.TopProducts(*top))
	printTable("Revenue by Country", analyzer.RevenueByCountry())
	printTable("Top Customers", analyzer.TopCustomers(*top))
	printTable("Monthly Trend", analyzer.MonthlyTrend())
}
