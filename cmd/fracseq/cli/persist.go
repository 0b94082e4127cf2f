package cli

import (
	"context"

	"github.com/dustin/go-humanize"
	"github.com/gravitational/trace"
	"github.com/npillmayer/fracseq/journal"
	"github.com/npillmayer/fracseq/seqio"
	"github.com/npillmayer/fracseq/store/boltstore"
	"github.com/npillmayer/fracseq/store/sqlstore"
)

func saveSQLite(ctx context.Context, p *printer, path string, n int) error {
	store, err := sqlstore.Open(ctx, sqlstore.Config{DBPath: path})
	if err != nil {
		return trace.Wrap(err)
	}
	defer store.Close()
	seq := fractionSequence(n)
	if err := sqlstore.Save(ctx, store, seq, seqio.StringCodec{}); err != nil {
		return trace.Wrap(err)
	}
	count, err := store.Count(ctx)
	if err != nil {
		return trace.Wrap(err)
	}
	p.Printf("%s rows stored in %s\n", humanize.Comma(int64(count)), path)
	return nil
}

// saveBolt records the insertions of fractionSequence through a journal and
// follows the journal into a bolt database.
func saveBolt(ctx context.Context, p *printer, path string, n int) error {
	store, err := boltstore.Open(boltstore.Config{Path: path})
	if err != nil {
		return trace.Wrap(err)
	}
	defer store.Close()
	j := journal.New[string](nil)
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	events, err := j.Subscribe(ctx, 64)
	if err != nil {
		return trace.Wrap(err)
	}
	errch := make(chan error, 1)
	go func() {
		err := journal.Follow(ctx, events, store, seqio.StringCodec{})
		if err != nil {
			cancel()
		}
		errch <- err
	}()
	j.Push("A")
	j.Push("B")
	j.Push("C")
	for i := 1; i <= n; i++ {
		j.Insert(i, "A")
	}
	j.Close()
	if err := <-errch; err != nil {
		return trace.Wrap(err)
	}
	count, err := store.Count(ctx)
	if err != nil {
		return trace.Wrap(err)
	}
	p.Printf("%s keys stored in %s\n", humanize.Comma(int64(count)), path)
	return nil
}
