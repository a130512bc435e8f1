package ioformat

import jsoniter "github.com/json-iterator/go"

// jsoniterConfig returns the codec used throughout the package: a
// standard-library-compatible configuration so struct tags and number
// handling match encoding/json exactly.
func jsoniterConfig() jsoniter.API {
	return jsoniter.ConfigCompatibleWithStandardLibrary
}
