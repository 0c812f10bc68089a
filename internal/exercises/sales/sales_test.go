package sales

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const txCSV = `InvoiceNo,StockCode,Quantity,InvoiceDate,UnitPrice,CustomerID
536365,85123A,6,2010-12-01 08:26:00,2.55,17850
536365,85123A,6,2010-12-01 08:26:00,2.55,17850
536366,71053,2,2010-12-01 08:28:00,3.39,17850
536367,84406B,-1,2010-12-01 08:34:00,2.75,13047
536368,84406B,4,2010-12-02 10:00:00,0,13047
536369,22728,10,2010-12-15 09:00:00,1.25,
536370,22728,8,2011-01-05 12:00:00,1.25,13047
`

const productCSV = `StockCode,Description,Category,UnitPrice
85123A,White Hanging Heart,Decor,2.55
71053,White Metal Lantern,Decor,3.39
84406B,Cream Cupid Hearts,Decor,2.75
22728,Alarm Clock Bakelike,Kitchen,not-a-price
`

const customerCSV = `CustomerID,CustomerName,Country,Segment,Region,JoinDate
17850,Alice Smith,United Kingdom,Retail,EMEA,2009-05-01
13047,Bob Jones,France,Wholesale,EMEA,2010-01-15
`

func loadedAnalyzer(t *testing.T) *Analyzer {
	t.Helper()
	a := NewAnalyzer()
	require.NoError(t, a.LoadTransactions(strings.NewReader(txCSV)))
	require.NoError(t, a.LoadProducts(strings.NewReader(productCSV)))
	require.NoError(t, a.LoadCustomers(strings.NewReader(customerCSV)))
	return a
}

func TestClean(t *testing.T) {
	a := loadedAnalyzer(t)

	report := a.Clean()
	assert.Equal(t, 7, report.Initial)
	assert.Equal(t, 1, report.Duplicates)
	assert.Equal(t, 1, report.InvalidQuantity)
	assert.Equal(t, 1, report.InvalidPrice)
	assert.Equal(t, 1, report.MissingCustomer)
	assert.Equal(t, 3, report.Final)
}

func TestMergeComputesRevenue(t *testing.T) {
	a := loadedAnalyzer(t)
	a.Clean()

	records := a.Merge()
	require.Len(t, records, 3)

	first := records[0]
	assert.Equal(t, "White Hanging Heart", first.ProductName)
	assert.Equal(t, "United Kingdom", first.Country)
	assert.InDelta(t, 15.30, first.Revenue, 0.001)
	assert.Equal(t, "2010-12", first.Month)

	// Product row with unparsable price was dropped from the catalog, so
	// the join falls back to the stock code.
	last := records[2]
	assert.Equal(t, "", last.ProductName)
	assert.Equal(t, "France", last.Country)
}

func TestAggregations(t *testing.T) {
	a := loadedAnalyzer(t)
	a.Clean()
	a.Merge()

	assert.InDelta(t, 15.30+6.78+10.0, a.TotalRevenue(), 0.001)

	top := a.TopProducts(2)
	require.Len(t, top, 2)
	assert.Equal(t, "White Hanging Heart", top[0].Key)
	assert.InDelta(t, 15.30, top[0].Revenue, 0.001)

	byCountry := a.RevenueByCountry()
	require.Len(t, byCountry, 2)
	assert.Equal(t, "United Kingdom", byCountry[0].Key)

	trend := a.MonthlyTrend()
	require.Len(t, trend, 2)
	assert.Equal(t, "2010-12", trend[0].Key)
	assert.Equal(t, "2011-01", trend[1].Key)

	customers := a.TopCustomers(1)
	require.Len(t, customers, 1)
	assert.Equal(t, "17850", customers[0].Key)
}

func TestLoadTransactions_EmptyCSV(t *testing.T) {
	a := NewAnalyzer()
	err := a.LoadTransactions(strings.NewReader(""))
	assert.Error(t, err)
}
