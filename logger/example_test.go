package logger_test

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/cartoworks/geolog/logger"
)

func ExampleRegistry_Get() {
	reg := logger.NewRegistry()

	var out bytes.Buffer
	log, err := reg.Get("demo", logger.Config{
		Level:         "WARNING",
		ConsoleWriter: &out,
	})
	if err != nil {
		fmt.Println(err)
		return
	}

	log.Debug("too quiet to be seen")
	log.Warning("the sky may be falling")

	line := out.String()
	fmt.Println(strings.Contains(line, "WARNING"))
	fmt.Println(strings.Contains(line, "demo"))
	// Output:
	// true
	// true
}

func ExampleRegistry_Get_invalidLevel() {
	reg := logger.NewRegistry()

	_, err := reg.Get("demo", logger.Config{Level: "TRACE"})
	fmt.Println(err)
	// Output:
	// invalid log level: "TRACE"
}
