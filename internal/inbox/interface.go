package inbox

import "context"

// Processor summarizes every link found in a dropped file.
type Processor interface {
	Process(ctx context.Context, linkFile string) error
}
