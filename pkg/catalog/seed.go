package catalog

import (
	"time"

	"github.com/shopspring/decimal"
)

// seedTime is the nominal "last updated" stamp for the demo quotes. The
// values below are a frozen snapshot, not live data.
var seedTime = time.Date(2024, time.March, 15, 16, 0, 0, 0, time.UTC)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

var securities = []Security{
	{
		Symbol:        "AAPL",
		Name:          "Apple Inc.",
		Sector:        "Technology",
		Industry:      "Consumer Electronics",
		Price:         dec("182.52"),
		Change:        dec("2.45"),
		ChangePercent: 1.36,
		Volume:        45234567,
		Description:   "Designs, manufactures and markets smartphones, personal computers, tablets, wearables and accessories, and sells a variety of related services.",
		LastUpdated:   seedTime,
		MarketCap:     "2.85T",
		PE:            28.5,
		EPS:           6.42,
		High52W:       dec("199.62"),
		Low52W:        dec("164.08"),
		Dividend:      dec("0.96"),
		Beta:          1.24,
	},
	{
		Symbol:        "GOOGL",
		Name:          "Alphabet Inc.",
		Sector:        "Communication Services",
		Industry:      "Internet Content & Information",
		Price:         dec("142.56"),
		Change:        dec("-1.23"),
		ChangePercent: -0.85,
		Volume:        28456789,
		Description:   "Provides online advertising, search, cloud computing, software and hardware products through Google Services, Google Cloud and Other Bets.",
		LastUpdated:   seedTime,
		MarketCap:     "1.78T",
		PE:            24.8,
		EPS:           5.75,
		High52W:       dec("151.55"),
		Low52W:        dec("121.46"),
		Dividend:      dec("0.00"),
		Beta:          1.05,
	},
	{
		Symbol:        "MSFT",
		Name:          "Microsoft Corporation",
		Sector:        "Technology",
		Industry:      "Software - Infrastructure",
		Price:         dec("378.85"),
		Change:        dec("4.67"),
		ChangePercent: 1.25,
		Volume:        32567890,
		Description:   "Develops and supports software, services, devices and solutions, including Office, Azure, Windows, LinkedIn and gaming.",
		LastUpdated:   seedTime,
		MarketCap:     "2.81T",
		PE:            32.1,
		EPS:           11.80,
		High52W:       dec("384.30"),
		Low52W:        dec("309.45"),
		Dividend:      dec("3.00"),
		Beta:          0.89,
	},
	{
		Symbol:        "TSLA",
		Name:          "Tesla, Inc.",
		Sector:        "Consumer Cyclical",
		Industry:      "Auto Manufacturers",
		Price:         dec("248.42"),
		Change:        dec("12.34"),
		ChangePercent: 5.23,
		Volume:        89456123,
		Description:   "Designs, develops, manufactures and sells electric vehicles and energy generation and storage systems.",
		LastUpdated:   seedTime,
		MarketCap:     "790.2B",
		PE:            45.6,
		EPS:           5.44,
		High52W:       dec("299.29"),
		Low52W:        dec("152.37"),
		Dividend:      dec("0.00"),
		Beta:          2.08,
	},
	{
		Symbol:        "AMZN",
		Name:          "Amazon.com, Inc.",
		Sector:        "Consumer Cyclical",
		Industry:      "Internet Retail",
		Price:         dec("153.76"),
		Change:        dec("-2.11"),
		ChangePercent: -1.35,
		Volume:        41234567,
		Description:   "Engages in the retail sale of consumer products and subscriptions, and offers cloud services through Amazon Web Services.",
		LastUpdated:   seedTime,
		MarketCap:     "1.59T",
		PE:            48.2,
		EPS:           3.19,
		High52W:       dec("170.40"),
		Low52W:        dec("118.35"),
		Dividend:      dec("0.00"),
		Beta:          1.15,
	},
	{
		Symbol:        "NVDA",
		Name:          "NVIDIA Corporation",
		Sector:        "Technology",
		Industry:      "Semiconductors",
		Price:         dec("875.28"),
		Change:        dec("18.45"),
		ChangePercent: 2.15,
		Volume:        52345678,
		Description:   "Provides graphics, compute and networking platforms for gaming, data centers, professional visualization and automotive markets.",
		LastUpdated:   seedTime,
		MarketCap:     "2.16T",
		PE:            65.4,
		EPS:           13.38,
		High52W:       dec("974.00"),
		Low52W:        dec("419.38"),
		Dividend:      dec("0.16"),
		Beta:          1.68,
	},
}
