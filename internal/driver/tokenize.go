package driver

import (
	"errors"
	"fmt"

	"xbase/internal/diag"
	"xbase/internal/dialect"
	"xbase/internal/lexer"
	"xbase/internal/source"
	"xbase/internal/token"
)

type TokenizeResult struct {
	FileSet *source.FileSet
	File    *source.File
	Dialect dialect.Kind
	Tokens  []token.Token
	Bag     *diag.Bag
}

// Tokenize сканирует файл в любом диалекте до EOF.
// На ошибке лексера возвращает токены, прочитанные до неё, и саму ошибку.
func Tokenize(path string, d dialect.Kind) (*TokenizeResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return tokenizeFile(fs, fs.Get(fileID), d)
}

func tokenizeFile(fs *source.FileSet, file *source.File, d dialect.Kind) (*TokenizeResult, error) {
	res := &TokenizeResult{FileSet: fs, File: file, Dialect: d, Bag: diag.NewBag(0)}
	lx, err := lexer.New(file, d)
	if err != nil {
		return res, err
	}
	for {
		tok, err := lx.Next()
		if err != nil {
			addError(res.Bag, err)
			return res, err
		}
		res.Tokens = append(res.Tokens, tok)
		if tok.Kind == token.EOF {
			return res, nil
		}
	}
}

// addError кладёт *diag.Error в bag, чтобы его отрисовал diagfmt.
func addError(bag *diag.Bag, err error) {
	var de *diag.Error
	if bag != nil && errors.As(err, &de) {
		bag.Add(de.Diagnostic())
	}
}
