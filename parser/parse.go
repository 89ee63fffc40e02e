package parser

import "github.com/shiro/map2-legacy/parser/source"

const MainName = "(main)"

func NewSingleParser(input, fileName string, opts *ParserOptions) *Parser {
	fileSet := source.NewFileSet()
	if fileName == "" {
		fileName = MainName
	}

	srcFile := fileSet.AddFileData(fileName, -1, []byte(input))
	return NewParserWithOptions(srcFile, opts)
}

func Parse(input, fileName string, opts *ParserOptions) (*File, error) {
	return NewSingleParser(input, fileName, opts).ParseFile()
}
