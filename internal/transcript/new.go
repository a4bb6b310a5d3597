package transcript

import (
	"github.com/nguyentantai21042004/podsum/internal/config"
	"github.com/nguyentantai21042004/podsum/internal/logger"
	"github.com/nguyentantai21042004/podsum/pkg/executor"
)

// New builds the provider described by cfg: YouTube captions, followed by
// yt-dlp when it is enabled.
func New(cfg config.TranscriptConfig, exec executor.Executor, log logger.Logger) Provider {
	providers := []Provider{NewYouTube(cfg.Languages, log)}
	if cfg.YTDLP.Enabled {
		providers = append(providers, NewYTDLP(exec, cfg.YTDLP.BinaryPath, cfg.Languages, log))
	}
	return NewChain(log, providers...)
}
