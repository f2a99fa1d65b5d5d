// Package classify turns (endpoint, HTTP status, JSON body) triples from the
// auction API into a fixed set of outcome variants.
//
// The upstream API overloads HTTP status codes: the same code carries a
// different meaning per endpoint (404 is "no bid yet" on the wallet lookup
// but "bid not found" on the id lookup). Classification is therefore keyed
// by (endpoint, status), one table per endpoint, never a global status map.
package classify
