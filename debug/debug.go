package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Parse  bool
	Canon  bool
	Notate bool
	Sign   bool
}

var d *debug

func init() {
	d = &debug{}
	d.Parse = boolEnv("SIG_DEBUG_PARSE")
	d.Canon = boolEnv("SIG_DEBUG_CANON")
	d.Notate = boolEnv("SIG_DEBUG_NOTATE")
	d.Sign = boolEnv("SIG_DEBUG_SIGN")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Parse() bool {
	return d.Parse
}
func Canon() bool {
	return d.Canon
}
func Notate() bool {
	return d.Notate
}
func Sign() bool {
	return d.Sign
}
