// Package carteira keeps the book of a small stock investor.
//
// An Account, identified by its CPF, owns up to MaxWallets wallets. Each
// Wallet holds purchase orders. The value of an Order is never typed in: it is
// the average price of the ticker on the order date, read from a B3 historical
// quotes file through a PriceSource, times the quantity. Balances are sums of
// order values, recomputed on every read.
//
// Inputs are validated domain values (CPF, Code, Ticker, Date, Name, Profile,
// Money, Quantity, Password) built with their Parse functions; a rejected
// input is a *ValidationError. Book enforces the rules between records on top
// of a Store, implemented by the sqlstore and boltstore packages.
package carteira
