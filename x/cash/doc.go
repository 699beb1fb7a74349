/*
Package cash keeps the balances of every account.

Next to the spendable balance each account has a reserved balance. Reserved
funds cannot be spent until they are released, which is how deposits are
held against kitty owners.
*/
package cash
