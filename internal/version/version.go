package version

// Version se sobreescribe en build con -ldflags.
var Version = "0.1.0"

func FullVersion() string {
	return "v" + Version
}
