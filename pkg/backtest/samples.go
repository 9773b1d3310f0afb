package backtest

import "fmt"

// SampleStrategies returns the canned strategy descriptions offered as quick
// examples on the backtest form, phrased for the given symbol.
func SampleStrategies(symbol string) []string {
	return []string{
		fmt.Sprintf("Buy %s when RSI < 30 and sell when RSI > 70", symbol),
		fmt.Sprintf("Dollar cost average $1000 monthly into %s for 2 years", symbol),
		fmt.Sprintf("Buy %s when price drops 5%% from 20-day high", symbol),
		fmt.Sprintf("Moving average crossover strategy for %s", symbol),
	}
}
