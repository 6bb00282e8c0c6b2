package store_test

import (
	"testing"

	"github.com/styledstring/styledstring/pkg/store"
	"github.com/styledstring/styledstring/pkg/store/storetest"
)

func TestStore(t *testing.T) {
	storetest.TestStore(t, store.MustTempStore(t))
}
