/*
Package app turns extensions into an ABCI application.

StoreApp owns the committed store and serves Info, Query, InitChain and
Commit. BaseApp embeds it and adds CheckTx, DeliverTx and BeginBlock, which
decode the transaction, build the block context (height, time, random seed
and transaction index) and dispatch to a Handler built from a decorator chain
and a Router.

Events of delivered transactions are collected per block and appended to the
journal once the block is committed.
*/
package app
