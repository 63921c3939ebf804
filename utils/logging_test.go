package utils

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	. "gopkg.in/check.v1"
)

type LoggingSuite struct {
	origLogger zerolog.Logger
}

var _ = Suite(&LoggingSuite{})

func (s *LoggingSuite) SetUpTest(c *C) {
	s.origLogger = log.Logger
}

func (s *LoggingSuite) TearDownTest(c *C) {
	log.Logger = s.origLogger
}

func (s *LoggingSuite) TestLogWriter(c *C) {
	var buf bytes.Buffer
	logWriter := LogWriter{Logger: zerolog.New(&buf)}

	data := []byte("[GIN] 200 GET /api/version\n")
	n, err := logWriter.Write(data)
	c.Check(err, IsNil)
	c.Check(n, Equals, len(data))

	var entry map[string]interface{}
	c.Assert(json.Unmarshal(buf.Bytes(), &entry), IsNil)
	c.Check(entry["level"], Equals, "info")
	c.Check(entry["message"], Equals, "[GIN] 200 GET /api/version")
}

func (s *LoggingSuite) TestSetupJSONLogger(c *C) {
	var buf bytes.Buffer
	SetupLogger("json", "info", &buf)

	log.Debug().Msg("hidden")
	log.Info().Str("repo", "core").Msg("loaded")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	c.Assert(lines, HasLen, 1)

	var entry map[string]interface{}
	c.Assert(json.Unmarshal([]byte(lines[0]), &entry), IsNil)
	c.Check(entry["level"], Equals, "info")
	c.Check(entry["message"], Equals, "loaded")
	c.Check(entry["repo"], Equals, "core")
	c.Check(entry["time"], NotNil)
}

func (s *LoggingSuite) TestSetupDefaultLogger(c *C) {
	var buf bytes.Buffer
	SetupLogger("default", "warning", &buf)

	log.Info().Msg("hidden")
	log.Warn().Msg("shown")

	c.Check(buf.String(), Not(Matches), "(?s).*hidden.*")
	c.Check(buf.String(), Matches, "(?s).*WRN.*shown.*")
}

func (s *LoggingSuite) TestGetLogLevelOrDebug(c *C) {
	for levelStr, expected := range map[string]zerolog.Level{
		"debug":   zerolog.DebugLevel,
		"INFO":    zerolog.InfoLevel,
		"warn":    zerolog.WarnLevel,
		"Warning": zerolog.WarnLevel,
		"error":   zerolog.ErrorLevel,
		"trace":   zerolog.TraceLevel,
		"bogus":   zerolog.DebugLevel,
		"":        zerolog.NoLevel,
	} {
		c.Check(GetLogLevelOrDebug(levelStr), Equals, expected, Commentf("level %q", levelStr))
	}
}
