package base

import (
	"io"

	"github.com/goccy/go-json"
)

type JsonMap map[string]interface{}

/***************************************
 * JSON
 ***************************************/

type JsonOptions struct {
	PrettyPrint bool
}

type JsonOptionFunc = func(*JsonOptions)

func OptionJsonPrettyPrint(enabled bool) JsonOptionFunc {
	return func(jo *JsonOptions) {
		jo.PrettyPrint = enabled
	}
}

func JsonSerialize(x interface{}, dst io.Writer, options ...JsonOptionFunc) error {
	var opts JsonOptions
	for _, it := range options {
		it(&opts)
	}

	encoder := json.NewEncoder(dst)

	if opts.PrettyPrint {
		encoder.SetIndent("", "  ")
	} else {
		encoder.SetIndent("", "")
	}

	return encoder.EncodeWithOption(x,
		json.DisableHTMLEscape(),
		json.DisableNormalizeUTF8())
}
func JsonDeserialize(x interface{}, src io.Reader) error {
	return json.NewDecoder(src).Decode(x)
}
func JsonUnmarshal(x interface{}, data []byte) error {
	return json.Unmarshal(data, x)
}
