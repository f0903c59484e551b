package benchmarks

import (
	"context"
	"errors"
	"testing"

	"github.com/zoobzio/remotedata"
)

type benchPayload struct {
	ID   int
	Name string
}

var sink string

func BenchmarkSuccess_Construct(b *testing.B) {
	p := &benchPayload{ID: 1, Name: "bench"}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := remotedata.Success[error](p); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkFold(b *testing.B) {
	view := remotedata.Fold(
		func() string { return "initialized" },
		func() string { return "pending" },
		func(error) string { return "failure" },
		func(p *benchPayload) string { return p.Name },
	)
	values := []remotedata.RemoteData[error, *benchPayload]{
		remotedata.Initialized[error, *benchPayload](),
		remotedata.Pending[error, *benchPayload](),
		remotedata.MustFailure[error, *benchPayload](errors.New("boom")),
		remotedata.MustSuccess[error](&benchPayload{ID: 1, Name: "bench"}),
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sink = view(values[i%len(values)])
	}
}

func BenchmarkMatch_Complete(b *testing.B) {
	m := remotedata.Complete(remotedata.Cases[error, *benchPayload, string]{
		Initialized: func() string { return "initialized" },
		Pending:     func() string { return "pending" },
		Failure:     func(error) string { return "failure" },
		Success:     func(p *benchPayload) string { return p.Name },
	})
	rd := remotedata.MustSuccess[error](&benchPayload{ID: 1, Name: "bench"})

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		v, err := remotedata.Match(rd, m)
		if err != nil {
			b.Fatal(err)
		}
		sink = v
	}
}

func BenchmarkMatch_PartialFallback(b *testing.B) {
	m := remotedata.Partial(
		func() string { return "fallback" },
		remotedata.Cases[error, *benchPayload, string]{},
	)
	rd := remotedata.Pending[error, *benchPayload]()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		v, err := remotedata.Match(rd, m)
		if err != nil {
			b.Fatal(err)
		}
		sink = v
	}
}

func BenchmarkStore_Set(b *testing.B) {
	ctx := context.Background()
	s := remotedata.NewStore[error, int]("bench")
	values := []remotedata.RemoteData[error, int]{
		remotedata.Pending[error, int](),
		remotedata.MustSuccess[error](1),
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := s.Set(ctx, values[i%2]); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkStore_Load(b *testing.B) {
	s := remotedata.NewStore[error, int]("bench")
	_ = s.Set(context.Background(), remotedata.MustSuccess[error](1))

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			_ = s.Load()
		}
	})
}
