package cmd

import (
	"os"
	"testing"

	"github.com/kastheco/navrail/log"
)

func TestMain(m *testing.M) {
	log.Initialize(false)
	defer log.Close()
	os.Exit(m.Run())
}
