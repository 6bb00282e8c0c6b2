package diag

import (
	"testing"

	"github.com/styledstring/styledstring/pkg/tt"
)

var Args = tt.Args

func TestValid(t *testing.T) {
	tt.Test(t, tt.Fn("Ranging.Valid", Ranging.Valid), tt.Table{
		Args(Ranging{0, 0}).Rets(true),
		Args(Ranging{2, 5}).Rets(true),
		Args(Ranging{-1, 5}).Rets(false),
		Args(Ranging{5, 2}).Rets(false),
	})
}

func TestContains(t *testing.T) {
	tt.Test(t, tt.Fn("Ranging.Contains", Ranging.Contains), tt.Table{
		Args(Ranging{2, 4}, 1).Rets(false),
		Args(Ranging{2, 4}, 2).Rets(true),
		Args(Ranging{2, 4}, 3).Rets(true),
		Args(Ranging{2, 4}, 4).Rets(false),
		Args(Ranging{3, 3}, 3).Rets(false),
	})
}

func TestOverlaps(t *testing.T) {
	tt.Test(t, tt.Fn("Ranging.Overlaps", Ranging.Overlaps), tt.Table{
		Args(Ranging{2, 4}, 0, 2).Rets(false),
		Args(Ranging{2, 4}, 4, 6).Rets(false),
		Args(Ranging{2, 4}, 3, 6).Rets(true),
		Args(Ranging{2, 4}, 0, 10).Rets(true),
		Args(Ranging{0, 10}, 4, 5).Rets(true),
		Args(Ranging{3, 3}, 0, 10).Rets(true),
		Args(Ranging{0, 0}, 0, 10).Rets(false),
	})
}

func TestClip(t *testing.T) {
	tt.Test(t, tt.Fn("Ranging.Clip", Ranging.Clip), tt.Table{
		Args(Ranging{2, 4}, 3, 6).Rets(Ranging{0, 1}),
		Args(Ranging{2, 4}, 0, 10).Rets(Ranging{2, 4}),
		Args(Ranging{0, 10}, 4, 5).Rets(Ranging{0, 1}),
		Args(Ranging{5, 8}, 2, 6).Rets(Ranging{3, 4}),
	})
}

func TestShift(t *testing.T) {
	tt.Test(t, tt.Fn("Ranging.Shift", Ranging.Shift), tt.Table{
		Args(Ranging{2, 4}, 3).Rets(Ranging{5, 7}),
		Args(Ranging{2, 4}, 0).Rets(Ranging{2, 4}),
	})
}
