package main

import (
	"os"

	"github.com/sirupsen/logrus"

	"github.com/mike-koala-bear/FlintCoreTesting/internal/flintest/cmd"
)

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
		PadLevelText:     true,
	})
	logrus.SetLevel(logrus.InfoLevel)

	if err := flintest(); err != nil {
		logrus.Fatal(err)
	}
}

func flintest() error {
	root := cmd.Root()
	root.SetArgs(os.Args[1:])
	return root.Execute()
}
