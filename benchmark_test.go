package bizerror

import (
	"iter"
	"testing"
)

func BenchmarkTableNew(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = userTable.New("NotFound", "user %d missing", i)
	}
}

func BenchmarkWrapBiz(b *testing.B) {
	base := userTable.New("NotFound", "user 1 missing")
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = WrapBiz(base, "lookup")
	}
}

func BenchmarkAddContext(b *testing.B) {
	base := WrapBiz(userTable.New("NotFound", "user 1 missing"), "lookup")
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = base.AddContext("retry")
	}
}

func BenchmarkMapBizSuccess(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, be := MapBiz(i, nil, billingFrom); be != nil {
			b.Fatal("unexpected error")
		}
	}
}

func BenchmarkWithContextFailure(b *testing.B) {
	cause := ioErr{"gateway 502"}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = WithContext(0, error(cause), billingFrom, "charging card")
	}
}

func buildDeepChain(depth int) error {
	err := error(ioErr{"root"})
	for i := 0; i < depth; i++ {
		err = userTable.Wrap("NotFound", err, "layer %d", i)
	}
	return err
}

func BenchmarkChainDepthDeep(b *testing.B) {
	err := buildDeepChain(64)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = ChainDepth(err)
	}
}

func BenchmarkChainMessagesDeep(b *testing.B) {
	err := buildDeepChain(64)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = ChainMessages(err)
	}
}

func BenchmarkCollect(b *testing.B) {
	outcomes := make([]*Contextual[uint32], 16)
	for i := range outcomes {
		if i%4 == 0 {
			outcomes[i] = WrapBiz(userTable.New("NotFound", "missing"), "batch")
		}
	}
	var seq iter.Seq2[int, *Contextual[uint32]] = func(yield func(int, *Contextual[uint32]) bool) {
		for i, w := range outcomes {
			if !yield(i, w) {
				return
			}
		}
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = Collect(seq)
	}
}
