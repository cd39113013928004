// Package currency implements conversion between base-unit balances held in
// wallet records and human-readable amount strings.
//
// Use IsSupported to check if a currency is supported and NewParser to
// obtain a parser for it.
package currency
