package export

import (
	"os"
	"testing"

	"github.com/memmaker/tilemesh/engine/util"
)

func TestMain(m *testing.M) {
	util.SetLogOutput(nil)
	os.Exit(m.Run())
}
