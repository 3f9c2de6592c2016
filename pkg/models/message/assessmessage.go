package message

import (
	"github.com/HuXin0817/power-boxes/pkg/models/chess"
	"github.com/bytedance/sonic"
)

// AssessMessageKey names a cached search of one position.
type AssessMessageKey struct {
	Position  string `json:"position"`
	Depth     int    `json:"depth"`
	Algorithm string `json:"algorithm"`
}

func (a AssessMessageKey) String() string {
	str, _ := sonic.MarshalString(a)
	return "assess:" + str
}

func (a AssessMessageKey) LockName() string {
	return a.String() + ":lock"
}

type AssessMessageValue struct {
	Move  chess.Line `json:"move"`
	Found bool       `json:"found"`
	Score int        `json:"score"`
	Nodes int        `json:"nodes"`
}

func ParseAssessMessageValue(s string) (v AssessMessageValue, err error) {
	err = sonic.UnmarshalString(s, &v)
	return
}

func (a AssessMessageValue) String() string {
	str, _ := sonic.MarshalString(a)
	return str
}
