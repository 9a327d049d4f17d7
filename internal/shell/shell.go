package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"cdinventory/internal/inventory"
	"cdinventory/internal/logging"
	"cdinventory/internal/snapshot"
)

const menuText = `Menu

[l] Load Inventory from file
[a] Add CD
[i] Display Current Inventory
[d] Delete CD from Inventory
[s] Save Inventory to file
[x] exit
`

var (
	errExit        = errors.New("exit requested")
	errInterrupted = errors.New("interrupted")
)

// Options wires a Shell to its collaborators.
type Options struct {
	Store    *inventory.Store
	Gateway  *snapshot.Gateway
	DataFile string
	In       io.Reader
	Out      io.Writer
	// Interrupts delivers SIGINT (or a test stand-in). Nil disables
	// interrupt handling.
	Interrupts <-chan os.Signal
	Logger     *slog.Logger
	Colorize   bool
	TableStyle string
}

// Shell is one interactive session over a store.
type Shell struct {
	store      *inventory.Store
	gateway    *snapshot.Gateway
	dataFile   string
	in         io.Reader
	out        io.Writer
	interrupts <-chan os.Signal
	logger     *slog.Logger
	colorize   bool
	tableStyle string
	fold       cases.Caser

	lines <-chan string
	// readErr is set by the reader goroutine before lines is closed.
	readErr error
}

// New validates opts and returns a Shell ready to Run.
func New(opts Options) (*Shell, error) {
	if opts.Store == nil || opts.Gateway == nil {
		return nil, errors.New("shell requires a store and a gateway")
	}
	if strings.TrimSpace(opts.DataFile) == "" {
		return nil, errors.New("shell requires a data file path")
	}
	if opts.In == nil || opts.Out == nil {
		return nil, errors.New("shell requires input and output streams")
	}
	return &Shell{
		store:      opts.Store,
		gateway:    opts.Gateway,
		dataFile:   opts.DataFile,
		in:         opts.In,
		out:        opts.Out,
		interrupts: opts.Interrupts,
		logger:     logging.NewComponentLogger(opts.Logger, "shell"),
		colorize:   opts.Colorize,
		tableStyle: opts.TableStyle,
		fold:       cases.Lower(language.Und),
	}, nil
}

// Run loads the data file, then serves menu choices until the user exits,
// input ends, an interrupt is confirmed, or ctx is cancelled.
func (s *Shell) Run(ctx context.Context) error {
	done := make(chan struct{})
	defer close(done)
	s.lines = s.startReader(done)

	s.load()

	for {
		err := s.serveOnce(ctx)
		switch {
		case err == nil:
			continue
		case errors.Is(err, errExit):
			return nil
		case errors.Is(err, io.EOF):
			fmt.Fprintln(s.out)
			return nil
		case errors.Is(err, errInterrupted):
			quit, cerr := s.confirmQuit(ctx)
			if cerr != nil {
				return cerr
			}
			if quit {
				return nil
			}
		default:
			return err
		}
	}
}

func (s *Shell) startReader(done <-chan struct{}) <-chan string {
	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(s.in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-done:
				return
			}
		}
		s.readErr = scanner.Err()
	}()
	return lines
}

func (s *Shell) serveOnce(ctx context.Context) error {
	fmt.Fprint(s.out, menuText)
	fmt.Fprintln(s.out)
	choice, err := s.menuChoice(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintln(s.out)

	switch choice {
	case "x":
		return errExit
	case "l":
		return s.reload(ctx)
	case "a":
		return s.addCD(ctx)
	case "i":
		s.showInventory()
		return nil
	case "d":
		return s.deleteCD(ctx)
	case "s":
		return s.save(ctx)
	}
	return nil
}

func (s *Shell) menuChoice(ctx context.Context) (string, error) {
	for {
		answer, err := s.ask(ctx, "Which operation would you like to perform? [l, a, i, d, s or x]: ")
		if err != nil {
			return "", err
		}
		switch answer {
		case "l", "a", "i", "d", "s", "x":
			return answer, nil
		}
	}
}

func (s *Shell) reload(ctx context.Context) error {
	s.printStatus(statusWarn, "WARNING: If you continue, all unsaved data will be lost and the Inventory re-loaded from file.")
	answer, err := s.ask(ctx, "Do you want to continue? [y/n] ")
	if err != nil {
		return err
	}
	if answer == "y" {
		fmt.Fprintln(s.out, "reloading...")
		s.load()
		s.showInventory()
		return nil
	}
	if _, err := s.readLine(ctx, "canceling... Inventory data NOT reloaded. Press [ENTER] to continue to the menu."); err != nil {
		return err
	}
	s.showInventory()
	return nil
}

func (s *Shell) addCD(ctx context.Context) error {
	id, err := s.askInt(ctx, "Enter ID: ")
	if err != nil {
		return err
	}
	title, err := s.readLine(ctx, "What is the CD's title? ")
	if err != nil {
		return err
	}
	artist, err := s.readLine(ctx, "What is the Artist's name? ")
	if err != nil {
		return err
	}

	title, artist = strings.TrimSpace(title), strings.TrimSpace(artist)
	s.store.Add(id, title, artist)
	s.logger.Info("added cd",
		logging.String(logging.FieldEventType, "cd_added"),
		logging.Int(logging.FieldRecordID, id))
	s.showInventory()
	return nil
}

func (s *Shell) deleteCD(ctx context.Context) error {
	s.showInventory()
	id, err := s.askInt(ctx, "Which ID would you like to delete? ")
	if err != nil {
		return err
	}

	result := s.store.Remove(id)
	s.logger.Info("remove cd",
		logging.String(logging.FieldEventType, "cd_remove"),
		logging.Int(logging.FieldRecordID, id),
		logging.String("result", result.String()))
	if result == inventory.Removed {
		s.printStatus(statusOK, "The CD was removed")
	} else {
		s.printStatus(statusWarn, "Could not find this CD!")
	}
	s.showInventory()
	return nil
}

func (s *Shell) save(ctx context.Context) error {
	s.showInventory()
	answer, err := s.ask(ctx, "Save this inventory to file? [y/n] ")
	if err != nil {
		return err
	}
	if answer != "y" {
		_, err := s.readLine(ctx, "The inventory was NOT saved to file. Press [ENTER] to return to the menu.")
		return err
	}

	result := s.gateway.Save(s.dataFile, s.store)
	if result.OK() {
		s.printStatus(statusOK, fmt.Sprintf("Inventory saved to %s (%d CDs).", result.Path, result.Count))
		return nil
	}
	s.printStatus(statusError, fmt.Sprintf("The inventory could not be saved: %v", result.Err))
	return nil
}

// load runs the destructive load and tells the user what happened. The store
// is empty after any failure.
func (s *Shell) load() {
	result := s.gateway.Load(s.dataFile, s.store)
	switch result.Status {
	case snapshot.LoadSuccess:
		s.printStatus(statusOK, fmt.Sprintf("Loaded %d CDs from %s.", result.Count, result.Path))
	case snapshot.LoadNotFound:
		s.printStatus(statusWarn, "The file doesn't exist. No data could be loaded.")
	default:
		s.printStatus(statusError, fmt.Sprintf("The inventory file could not be read: %v\nThe in-memory inventory is now empty.", result.Err))
	}
}

func (s *Shell) confirmQuit(ctx context.Context) (bool, error) {
	fmt.Fprintln(s.out)
	answer, err := s.ask(ctx, "Are you sure you want to quit? [y/n] ")
	switch {
	case errors.Is(err, errInterrupted), errors.Is(err, io.EOF):
		fmt.Fprintln(s.out)
		return true, nil
	case err != nil:
		return false, err
	}
	return answer == "y", nil
}

func (s *Shell) showInventory() {
	fmt.Fprintln(s.out, "======= The Current Inventory: =======")
	records := s.store.List()
	if len(records) == 0 {
		fmt.Fprintln(s.out, "(no CDs in the inventory)")
	} else {
		fmt.Fprintln(s.out, RenderInventory(records, s.tableStyle))
	}
	fmt.Fprintln(s.out, "======================================")
	fmt.Fprintln(s.out)
}

func (s *Shell) askInt(ctx context.Context, prompt string) (int, error) {
	for {
		line, err := s.readLine(ctx, prompt)
		if err != nil {
			return 0, err
		}
		id, err := strconv.Atoi(strings.TrimSpace(line))
		if err == nil {
			return id, nil
		}
		s.printStatus(statusWarn, "Please enter an integer.")
	}
}

// ask reads one answer, trimmed and lower-cased.
func (s *Shell) ask(ctx context.Context, prompt string) (string, error) {
	line, err := s.readLine(ctx, prompt)
	if err != nil {
		return "", err
	}
	return s.fold.String(strings.TrimSpace(line)), nil
}

func (s *Shell) readLine(ctx context.Context, prompt string) (string, error) {
	fmt.Fprint(s.out, prompt)
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case <-s.interrupts:
		return "", errInterrupted
	case line, ok := <-s.lines:
		if !ok {
			if s.readErr != nil {
				return "", fmt.Errorf("read input: %w", s.readErr)
			}
			return "", io.EOF
		}
		return line, nil
	}
}

func (s *Shell) printStatus(kind statusKind, message string) {
	fmt.Fprintln(s.out, renderStatus(kind, message, s.colorize))
}
