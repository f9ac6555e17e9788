package emit

import (
	"io"
	"sync"

	jsoniter "github.com/json-iterator/go"
)

var (
	json     jsoniter.API
	jsonSync sync.Once
)

// JSONLibrary provides a "encoding/json" compatible API
func JSONLibrary() jsoniter.API {
	jsonSync.Do(func() {
		json = jsoniter.ConfigCompatibleWithStandardLibrary
	})
	return json
}

// JSON writes results as an indented JSON array.
func JSON(w io.Writer, results []Result) error {
	if results == nil {
		results = []Result{}
	}

	data, err := JSONLibrary().MarshalIndent(results, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')

	_, err = w.Write(data)
	return err
}
