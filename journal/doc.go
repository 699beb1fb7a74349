/*
Package journal keeps an append only log of the events produced by committed
transactions.

The application appends the events of a block once the block is committed,
so the journal never contains the outcome of a transaction that was rolled
back. Records are ordered by block height, transaction index and the
position of the event within its transaction, which makes the journal a
stable source for indexers and notification services:

	j, err := journal.Open(filepath.Join(home, "journal"), logger)
	if err != nil {
		return err
	}
	j.Subscribe("kitty_sold", func(r journal.Record) {
		// ...
	})

Replay reads the log back from any height.
*/
package journal
