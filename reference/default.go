package reference

import "home-assessment/domain"

// Default returns the built-in NJ/NY/CT county table.
func Default() *Table {
	return NewTable(map[string]map[string]domain.CountyProfile{
		"NJ": {
			"Bergen":    {TaxRate: 2.15, SchoolRanking: 30.5, AppreciationRate: 3.8},
			"Essex":     {TaxRate: 2.76, SchoolRanking: 48.4, AppreciationRate: 4.2},
			"Middlesex": {TaxRate: 2.29, SchoolRanking: 59.7, AppreciationRate: 3.6},
			"Morris":    {TaxRate: 2.19, SchoolRanking: 39.8, AppreciationRate: 3.7},
			"Union":     {TaxRate: 2.32, SchoolRanking: 35.4, AppreciationRate: 3.5},
			"Somerset":  {TaxRate: 2.08, SchoolRanking: 26.8, AppreciationRate: 3.6},
			"Monmouth":  {TaxRate: 2.04, SchoolRanking: 32.5, AppreciationRate: 4.0},
			"Hunterdon": {TaxRate: 2.42, SchoolRanking: 17.2, AppreciationRate: 3.2},
			"Passaic":   {TaxRate: 3.05, SchoolRanking: 62.3, AppreciationRate: 3.1},
			"Hudson":    {TaxRate: 2.11, SchoolRanking: 54.6, AppreciationRate: 4.5},
		},
		"NY": {
			"Westchester": {TaxRate: 1.62, SchoolRanking: 15.3, AppreciationRate: 4.1},
			"Nassau":      {TaxRate: 1.98, SchoolRanking: 18.7, AppreciationRate: 3.9},
			"Suffolk":     {TaxRate: 1.69, SchoolRanking: 36.2, AppreciationRate: 3.5},
			"Rockland":    {TaxRate: 1.84, SchoolRanking: 42.1, AppreciationRate: 3.7},
			"Putnam":      {TaxRate: 1.71, SchoolRanking: 44.6, AppreciationRate: 3.2},
			"Orange":      {TaxRate: 1.63, SchoolRanking: 48.9, AppreciationRate: 3.0},
			"Dutchess":    {TaxRate: 1.55, SchoolRanking: 46.2, AppreciationRate: 2.9},
			"Ulster":      {TaxRate: 1.77, SchoolRanking: 58.7, AppreciationRate: 2.8},
			"Sullivan":    {TaxRate: 1.52, SchoolRanking: 62.4, AppreciationRate: 2.5},
		},
		"CT": {
			"Fairfield":  {TaxRate: 1.83, SchoolRanking: 28.4, AppreciationRate: 3.6},
			"New Haven":  {TaxRate: 2.38, SchoolRanking: 61.3, AppreciationRate: 2.8},
			"Hartford":   {TaxRate: 2.4, SchoolRanking: 71.2, AppreciationRate: 2.5},
			"Litchfield": {TaxRate: 1.6, SchoolRanking: 66.8, AppreciationRate: 2.3},
			"Middlesex":  {TaxRate: 1.82, SchoolRanking: 64.5, AppreciationRate: 2.7},
			"New London": {TaxRate: 2.14, SchoolRanking: 72.6, AppreciationRate: 2.4},
			"Tolland":    {TaxRate: 2.05, SchoolRanking: 58.3, AppreciationRate: 2.2},
			"Windham":    {TaxRate: 1.93, SchoolRanking: 76.4, AppreciationRate: 2.0},
		},
	})
}
