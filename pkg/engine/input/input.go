package input

import (
	"bufio"
	"errors"
	"io"
	"log"
	"os"
	"strings"
	"time"
)

var stdinReader *LineReader

// LineReader turns lines of text into intents.
type LineReader struct {
	r *bufio.Reader
}

// NewLineReader reads commands from r.
func NewLineReader(r io.Reader) *LineReader {
	return &LineReader{r: bufio.NewReader(r)}
}

// ReadRaw reads one line as a RawInput. A final line without a newline is
// still returned; io.EOF comes after it.
func (lr *LineReader) ReadRaw() (RawInput, error) {
	line, err := lr.r.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return RawInput{}, err
	}
	return RawInput{
		Device:    DeviceTerminal,
		Code:      strings.TrimRight(line, "\r\n"),
		Timestamp: time.Now(),
	}, nil
}

// ReadIntent reads the next line and maps it to an intent.
func (lr *LineReader) ReadIntent() (Intent, error) {
	raw, err := lr.ReadRaw()
	if err != nil {
		return Intent{}, err
	}
	return MapToIntent(NewDebouncedInput(raw)), nil
}

// GetInput reads the next intent from stdin. End of input means quit.
func GetInput() Intent {
	if stdinReader == nil {
		stdinReader = NewLineReader(os.Stdin)
	}

	intent, err := stdinReader.ReadIntent()
	if errors.Is(err, io.EOF) {
		return Intent{Action: ActionQuit}
	}
	if err != nil {
		log.Fatalf("Cannot read stdin: %v", err)
	}
	return intent
}
