package inbox

import (
	"time"

	"github.com/nguyentantai21042004/podsum/internal/config"
	"github.com/nguyentantai21042004/podsum/internal/logger"
	"github.com/nguyentantai21042004/podsum/internal/summarizer"
)

type implProcessor struct {
	paths      config.PathsConfig
	writeDocx  bool
	summarizer summarizer.Summarizer
	logger     logger.Logger
	now        func() time.Time
}

// New creates a Processor writing summaries under cfg.Paths.Output.
func New(cfg *config.Config, s summarizer.Summarizer, log logger.Logger) Processor {
	return &implProcessor{
		paths:      cfg.Paths,
		writeDocx:  cfg.Output.Docx,
		summarizer: s,
		logger:     log,
		now:        time.Now,
	}
}
