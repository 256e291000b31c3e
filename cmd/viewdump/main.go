package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/shaunstanislauslau/hermes/buffer"
	"github.com/shaunstanislauslau/hermes/dataview"
	"github.com/shaunstanislauslau/hermes/transcoder"
)

func main() {
	var (
		file        = flag.String("file", "", "Path to the binary file to inspect")
		offset      = flag.Uint64("offset", 0, "Byte offset within the view")
		typeName    = flag.String("type", "", "Typed read at -offset: int8, uint8, int16, uint16, int32, uint32, float32, float64, bigint64, biguint64")
		le          = flag.Bool("le", false, "Little-endian byte order")
		viewLen     = flag.Uint64("len", 0, "View length in bytes (default: whole file)")
		ascii       = flag.Bool("ascii", false, "Report whether the view is all ASCII")
		utf16Mode   = flag.String("utf16", "", "Transcode the view as UTF-16 code units: exact or replace")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
		configPath  = flag.String("config", "", "Path to TOML config (default ~/.viewdump.toml)")
		debug       = flag.Bool("debug", false, "Enable debug logging")
	)
	flag.Parse()

	if *file == "" {
		fmt.Fprintln(os.Stderr, "Usage: viewdump -file <path> [-offset n] [-type name] [-le]")
		fmt.Fprintln(os.Stderr, "       viewdump -file <path> -ascii | -utf16 exact|replace")
		fmt.Fprintln(os.Stderr, "       viewdump -file <path> -i  (interactive mode)")
		os.Exit(1)
	}

	lenSet := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "len" {
			lenSet = true
		}
	})

	if *debug {
		logger, err := zap.NewDevelopment()
		if err == nil {
			buffer.SetLogger(logger)
		}
	}

	if *interactive {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			fmt.Fprintln(os.Stderr, "Error: interactive mode requires a terminal")
			os.Exit(1)
		}
		if err := runInteractive(*file, *configPath, *le); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := run(*file, *configPath, *typeName, *utf16Mode, *offset, *viewLen, lenSet, *le, *ascii); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(file, configPath, typeName, utf16Mode string, offset, viewLen uint64, lenSet, le, ascii bool) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if cfg.LittleEndian {
		le = true
	}

	buf, err := buffer.Map(file)
	if err != nil {
		return err
	}
	defer buf.Detach()

	var lengthArg any
	if lenSet {
		lengthArg = viewLen
	}
	view, err := dataview.New(buf, 0, lengthArg)
	if err != nil {
		return err
	}

	n, _ := view.ByteLength()
	fmt.Printf("File: %s\n", file)
	fmt.Printf("View: %d bytes\n", n)

	switch {
	case typeName != "":
		s, err := readTyped(view, typeName, offset, le)
		if err != nil {
			return err
		}
		fmt.Printf("%s @ %d (%s) = %s\n", typeName, offset, orderName(le), s)
		return nil

	case ascii:
		fmt.Printf("ascii: %v\n", transcoder.IsAllASCII(buf.Bytes()[:n]))
		return nil

	case utf16Mode != "":
		return transcode(view, utf16Mode, le)

	default:
		dump(buf.Bytes()[:n], cfg.Columns)
		return nil
	}
}

func orderName(le bool) string {
	if le {
		return "little-endian"
	}
	return "big-endian"
}

// readTyped performs one typed read through the view.
func readTyped(view *dataview.View, typeName string, offset uint64, le bool) (string, error) {
	switch strings.ToLower(typeName) {
	case "int8":
		n, err := view.GetInt8(offset)
		return fmt.Sprintf("%d", int64(n)), err
	case "uint8":
		n, err := view.GetUint8(offset)
		return fmt.Sprintf("%d", uint64(n)), err
	case "int16":
		n, err := view.GetInt16(offset, le)
		return fmt.Sprintf("%d", int64(n)), err
	case "uint16":
		n, err := view.GetUint16(offset, le)
		return fmt.Sprintf("%d", uint64(n)), err
	case "int32":
		n, err := view.GetInt32(offset, le)
		return fmt.Sprintf("%d", int64(n)), err
	case "uint32":
		n, err := view.GetUint32(offset, le)
		return fmt.Sprintf("%d", uint64(n)), err
	case "float32":
		n, err := view.GetFloat32(offset, le)
		return fmt.Sprintf("%g", n), err
	case "float64":
		n, err := view.GetFloat64(offset, le)
		return fmt.Sprintf("%g", n), err
	case "bigint64":
		n, err := view.GetBigInt64(offset, le)
		return fmt.Sprintf("%d", n), err
	case "biguint64":
		n, err := view.GetBigUint64(offset, le)
		return fmt.Sprintf("%d", n), err
	}
	return "", fmt.Errorf("unknown type %q", typeName)
}

// transcode reads the view as UTF-16 code units and prints the UTF-8
// bytes under the chosen lone-surrogate policy.
func transcode(view *dataview.View, mode string, le bool) error {
	n, _ := view.ByteLength()
	if n%2 != 0 {
		return fmt.Errorf("view length %d is odd; UTF-16 needs whole code units", n)
	}
	units := make([]uint16, 0, n/2)
	for off := uint64(0); off < n; off += 2 {
		u, err := view.GetUint16(off, le)
		if err != nil {
			return err
		}
		units = append(units, uint16(u))
	}

	var out []byte
	switch mode {
	case "exact":
		out = transcoder.UTF16ToUTF8WithSingleSurrogates(nil, units)
	case "replace":
		out = transcoder.UTF16ToUTF8WithReplacements(nil, units)
	default:
		return fmt.Errorf("unknown utf16 mode %q (want exact or replace)", mode)
	}

	fmt.Printf("units: %d, bytes: %d, ascii: %v\n", len(units), len(out), transcoder.IsAllASCII(out))
	fmt.Printf("%s\n", out)
	return nil
}

// dump prints a hex+ASCII dump, columns bytes per row.
func dump(data []byte, columns int) {
	for row := 0; row < len(data); row += columns {
		end := min(row+columns, len(data))
		fmt.Printf("%08x  ", row)
		for i := row; i < row+columns; i++ {
			if i < end {
				fmt.Printf("%02x ", data[i])
			} else {
				fmt.Print("   ")
			}
		}
		fmt.Print(" |")
		for i := row; i < end; i++ {
			c := data[i]
			if c < 0x20 || c > 0x7E {
				c = '.'
			}
			fmt.Printf("%c", c)
		}
		fmt.Println("|")
	}
}
