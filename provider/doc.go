// Package provider implements [money.ExchangeRateProvider] building blocks:
// a configurable rate table, cross rates through a base currency, a caching
// decorator and a logging decorator.
// Rate tables can be loaded from YAML documents with [LoadRates].
//
// All providers in this package are safe for concurrent use by multiple
// goroutines, provided that the providers they wrap are.
package provider
