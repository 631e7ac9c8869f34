package service

import (
	"fmt"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"github.com/MKhiriev/go-pubsub-chat/internal/logger"
	"github.com/MKhiriev/go-pubsub-chat/models"
)

const (
	// VerbQuit ends the session.
	VerbQuit = "quit"

	unknownCommandFormat = "Unknown command: %s"
)

type commandInterpreter struct {
	sigil     rune
	bridge    MessageBridge
	publisher ChatPublisher

	mu    sync.RWMutex
	verbs map[string]CommandHandler

	logger *logger.Logger
}

// NewCommandInterpreter creates an interpreter with the built-in verbs
// registered. Only quit is built in.
func NewCommandInterpreter(sigil rune, bridge MessageBridge, publisher ChatPublisher, logger *logger.Logger) CommandInterpreter {
	c := &commandInterpreter{
		sigil:     sigil,
		bridge:    bridge,
		publisher: publisher,
		verbs:     make(map[string]CommandHandler),
		logger:    logger,
	}
	c.verbs[VerbQuit] = quitHandler

	return c
}

// Interpret implements CommandInterpreter.
func (c *commandInterpreter) Interpret(text string) {
	if text == "" {
		return
	}

	cmd, ok := ParseCommand(c.sigil, text)
	if !ok {
		c.publisher.Send(text)
		return
	}

	for _, event := range c.dispatch(cmd) {
		c.bridge.Push(event)
	}
}

// Register implements CommandInterpreter.
func (c *commandInterpreter) Register(verb string, handler CommandHandler) error {
	if verb == "" || strings.ContainsFunc(verb, unicode.IsSpace) {
		return fmt.Errorf("%w: %q", ErrEmptyVerb, verb)
	}
	if handler == nil {
		return ErrNilHandler
	}

	c.mu.Lock()
	c.verbs[verb] = handler
	c.mu.Unlock()

	return nil
}

func (c *commandInterpreter) dispatch(cmd models.Command) []models.Event {
	c.mu.RLock()
	handler, ok := c.verbs[cmd.Verb]
	c.mu.RUnlock()

	if !ok {
		c.logger.Debug().Str("verb", cmd.Verb).Msg("unknown command")
		return []models.Event{models.NewCommandFeedback(fmt.Sprintf(unknownCommandFormat, cmd.Verb))}
	}

	c.logger.Debug().Str("verb", cmd.Verb).Strs("args", cmd.Args).Msg("command")
	return handler(cmd)
}

// ParseCommand reports whether text starts with sigil and, if so, splits the
// rest on whitespace into a verb and its arguments. A bare sigil yields an
// empty verb.
func ParseCommand(sigil rune, text string) (models.Command, bool) {
	first, size := utf8.DecodeRuneInString(text)
	if size == 0 || first != sigil {
		return models.Command{}, false
	}

	fields := strings.Fields(text[size:])
	if len(fields) == 0 {
		return models.Command{Args: []string{}}, true
	}

	return models.Command{Verb: fields[0], Args: fields[1:]}, true
}

func quitHandler(models.Command) []models.Event {
	return []models.Event{models.NewShutdownRequested()}
}
