// Package sales implements the exploratory-analysis exercise over the
// e-commerce CSV trio: transactions, product catalog and customers. All
// input is read-only; cleaning and merging happen in memory.
package sales

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/practica/exercises/internal/platform/logger"
)

type Transaction struct {
	ID          string
	ProductCode string
	Quantity    int
	Date        time.Time
	UnitPrice   float64
	CustomerID  string
}

type Product struct {
	Code     string
	Name     string
	Category string
	Price    float64
}

type Customer struct {
	ID      string
	Name    string
	Country string
	Segment string
	Region  string
}

// Record is one transaction joined with its product and customer.
type Record struct {
	Transaction
	ProductName string
	Category    string
	Country     string
	Segment     string
	Revenue     float64
	Month       string // YYYY-MM
}

// CleanReport summarizes what cleaning removed.
type CleanReport struct {
	Initial         int
	Final           int
	MissingCustomer int
	Duplicates      int
	InvalidQuantity int
	InvalidPrice    int
}

// Analyzer holds the three datasets and their join.
type Analyzer struct {
	transactions []Transaction
	products     map[string]Product
	customers    map[string]Customer
	merged       []Record
	log          *zap.Logger
}

func NewAnalyzer() *Analyzer {
	return &Analyzer{
		products:  make(map[string]Product),
		customers: make(map[string]Customer),
		log:       logger.With(zap.String("exercise", "sales")),
	}
}

// dateLayouts are tried in order when parsing transaction dates.
var dateLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02",
	"1/2/2006 15:04",
}

func parseDate(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", s)
}

// LoadFiles reads the three standard CSVs from dir.
func (a *Analyzer) LoadFiles(dir string) error {
	load := func(name string, fn func(io.Reader) error) error {
		f, err := os.Open(filepath.Join(dir, name))
		if err != nil {
			return fmt.Errorf("missing dataset file: %w", err)
		}
		defer func() {
			_ = f.Close()
		}()
		return fn(f)
	}

	if err := load("online_retail.csv", a.LoadTransactions); err != nil {
		return err
	}
	if err := load("products.csv", a.LoadProducts); err != nil {
		return err
	}
	return load("customers.csv", a.LoadCustomers)
}

// LoadTransactions parses the sales CSV
// (InvoiceNo,StockCode,Quantity,InvoiceDate,UnitPrice,CustomerID).
func (a *Analyzer) LoadTransactions(r io.Reader) error {
	rows, err := readAll(r, 6)
	if err != nil {
		return fmt.Errorf("reading transactions: %w", err)
	}

	for _, row := range rows {
		qty, err := strconv.Atoi(strings.TrimSpace(row[2]))
		if err != nil {
			continue // malformed quantity, skip the row
		}
		price, err := strconv.ParseFloat(strings.TrimSpace(row[4]), 64)
		if err != nil {
			continue
		}
		date, err := parseDate(strings.TrimSpace(row[3]))
		if err != nil {
			continue
		}
		a.transactions = append(a.transactions, Transaction{
			ID:          strings.TrimSpace(row[0]),
			ProductCode: strings.TrimSpace(row[1]),
			Quantity:    qty,
			Date:        date,
			UnitPrice:   price,
			CustomerID:  strings.TrimSpace(row[5]),
		})
	}
	a.log.Info("loaded transactions", zap.Int("count", len(a.transactions)))
	return nil
}

// LoadProducts parses the catalog CSV (StockCode,Description,Category,UnitPrice).
// Rows with an unparsable price are dropped, matching the cleaning rules.
func (a *Analyzer) LoadProducts(r io.Reader) error {
	rows, err := readAll(r, 4)
	if err != nil {
		return fmt.Errorf("reading products: %w", err)
	}

	for _, row := range rows {
		price, err := strconv.ParseFloat(strings.TrimSpace(row[3]), 64)
		if err != nil {
			continue
		}
		code := strings.TrimSpace(row[0])
		a.products[code] = Product{
			Code:     code,
			Name:     strings.TrimSpace(row[1]),
			Category: strings.TrimSpace(row[2]),
			Price:    price,
		}
	}
	return nil
}

// LoadCustomers parses the customer CSV
// (CustomerID,CustomerName,Country,Segment,Region,JoinDate).
func (a *Analyzer) LoadCustomers(r io.Reader) error {
	rows, err := readAll(r, 6)
	if err != nil {
		return fmt.Errorf("reading customers: %w", err)
	}

	for _, row := range rows {
		id := strings.TrimSpace(row[0])
		a.customers[id] = Customer{
			ID:      id,
			Name:    strings.TrimSpace(row[1]),
			Country: strings.TrimSpace(row[2]),
			Segment: strings.TrimSpace(row[3]),
			Region:  strings.TrimSpace(row[4]),
		}
	}
	return nil
}

// readAll decodes a headered CSV, requiring at least minFields per row.
func readAll(r io.Reader, minFields int) ([][]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	all, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(all) == 0 {
		return nil, fmt.Errorf("empty csv")
	}

	var rows [][]string
	for _, row := range all[1:] { // skip header
		if len(row) >= minFields {
			rows = append(rows, row)
		}
	}
	return rows, nil
}

// Clean drops rows with missing customer IDs, exact duplicates and
// non-positive quantities or prices, reporting what was removed.
func (a *Analyzer) Clean() CleanReport {
	report := CleanReport{Initial: len(a.transactions)}

	seen := make(map[string]bool)
	kept := a.transactions[:0]
	for _, tx := range a.transactions {
		switch {
		case tx.CustomerID == "":
			report.MissingCustomer++
		case tx.Quantity <= 0:
			report.InvalidQuantity++
		case tx.UnitPrice <= 0:
			report.InvalidPrice++
		default:
			key := fmt.Sprintf("%s|%s|%d|%s|%f|%s",
				tx.ID, tx.ProductCode, tx.Quantity, tx.Date.Format(time.RFC3339), tx.UnitPrice, tx.CustomerID)
			if seen[key] {
				report.Duplicates++
				continue
			}
			seen[key] = true
			kept = append(kept, tx)
		}
	}
	a.transactions = kept
	report.Final = len(kept)

	a.log.Info("cleaned transactions",
		zap.Int("initial", report.Initial),
		zap.Int("final", report.Final),
		zap.Int("duplicates", report.Duplicates),
	)
	return report
}

// Merge left-joins transactions with products and customers and computes
// revenue. Unknown product codes and customer IDs join as empty fields, the
// row is kept.
func (a *Analyzer) Merge() []Record {
	a.merged = make([]Record, 0, len(a.transactions))
	for _, tx := range a.transactions {
		rec := Record{
			Transaction: tx,
			Revenue:     float64(tx.Quantity) * tx.UnitPrice,
			Month:       tx.Date.Format("2006-01"),
		}
		if p, ok := a.products[tx.ProductCode]; ok {
			rec.ProductName = p.Name
			rec.Category = p.Category
		}
		if c, ok := a.customers[tx.CustomerID]; ok {
			rec.Country = c.Country
			rec.Segment = c.Segment
		}
		a.merged = append(a.merged, rec)
	}
	return a.merged
}

// TotalRevenue sums revenue across the merged records.
func (a *Analyzer) TotalRevenue() float64 {
	var total float64
	for _, r := range a.merged {
		total += r.Revenue
	}
	return total
}

// RevenueEntry is one aggregation bucket.
type RevenueEntry struct {
	Key     string
	Revenue float64
	Count   int
}

func (a *Analyzer) aggregate(key func(Record) string) []RevenueEntry {
	buckets := make(map[string]*RevenueEntry)
	for _, r := range a.merged {
		k := key(r)
		if k == "" {
			k = "Unknown"
		}
		e, ok := buckets[k]
		if !ok {
			e = &RevenueEntry{Key: k}
			buckets[k] = e
		}
		e.Revenue += r.Revenue
		e.Count++
	}

	out := make([]RevenueEntry, 0, len(buckets))
	for _, e := range buckets {
		out = append(out, *e)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Revenue != out[j].Revenue {
			return out[i].Revenue > out[j].Revenue
		}
		return out[i].Key < out[j].Key
	})
	return out
}

// TopProducts returns the n highest-revenue products.
func (a *Analyzer) TopProducts(n int) []RevenueEntry {
	entries := a.aggregate(func(r Record) string {
		if r.ProductName != "" {
			return r.ProductName
		}
		return r.ProductCode
	})
	if len(entries) > n {
		entries = entries[:n]
	}
	return entries
}

// RevenueByCountry aggregates revenue per customer country.
func (a *Analyzer) RevenueByCountry() []RevenueEntry {
	return a.aggregate(func(r Record) string { return r.Country })
}

// TopCustomers returns the n highest-spending customers by ID.
func (a *Analyzer) TopCustomers(n int) []RevenueEntry {
	entries := a.aggregate(func(r Record) string { return r.CustomerID })
	if len(entries) > n {
		entries = entries[:n]
	}
	return entries
}

// MonthlyTrend returns per-month revenue in chronological order.
func (a *Analyzer) MonthlyTrend() []RevenueEntry {
	entries := a.aggregate(func(r Record) string { return r.Month })
	sort.Slice(entries, func(i, j int) bool { return entries[i].Key < entries[j].Key })
	return entries
}
