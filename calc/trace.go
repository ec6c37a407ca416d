package calc

import (
	"github.com/dhamidi/calc/parse"
	"github.com/tliron/commonlog"
)

func traced(log commonlog.Logger, name string, p parse.Parser[float64]) parse.Parser[float64] {
	return func(input string) (float64, string, error) {
		log.Debugf("%s <- %q", name, input)
		v, rest, err := p(input)
		if err != nil {
			log.Debugf("%s !! %s", name, err)
			return v, rest, err
		}
		log.Debugf("%s -> %s, rest %q", name, Format(v), rest)
		return v, rest, nil
	}
}
