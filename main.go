package main

import (
	"github.com/pixperk/sheetsql/cmd"
	"github.com/pixperk/sheetsql/internal/logx"
)

func main() {
	logx.InitLogger()
	cmd.Execute()
}
