package fuzztests

import (
	"testing"
)

const maxFuzzInput = 1 << 16 // 64 KiB

var languageSeeds = []string{
	"",
	"PARAMETER a, b\n? a, b\n",
	"LOCAL n\nn = 0\nDO WHILE n < 3\nn = n + 1\nENDDO\n",
	"FOR i = 1 TO 10 STEP 2\n?? i\nNEXT i\n",
	"IF x = \"abc\" .AND. .NOT. y\n? 1\nELSE\n? 2\nENDIF\n",
	"SET COLOR TO W+/B\n@ 1, 2 SAY \"hi\"\n",
	"CLASS Foo OF PUSHBUTTON ( )\nTHIS.Text = \"OK\"\nENDCLASS\n",
	"? \"a\\tb\" // comment\n&& old comment\n* star comment\n",
	"/* block\ncomment */ ? (1 + 2) * 3\n",
	"{ pascal } (* block *) x := 'y'\n",
	"; lisp\n(print \"x\")\n",
	"? \"unterminated\n",
	"ENDIF\n",
	"x = ((1)\n",
	"? 1 ) \n",
}

func addSeeds(f *testing.F) {
	for _, s := range languageSeeds {
		f.Add([]byte(s))
	}
}

func clamp(input []byte) []byte {
	if len(input) > maxFuzzInput {
		input = input[:maxFuzzInput]
	}
	return append([]byte(nil), input...)
}
