// Command twircdump reads IRC lines from stdin (or a file named as its
// first argument) and prints one decoded summary per line to stdout.
// Its log lines also go to stdout, through zerolog's console writer,
// which is wrapped with go-colorable when stdout is a terminal.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"

	"github.com/biggeezerdevelopment/twirc"
)

func main() {
	configPath := flag.String("config", "", "path to a TOML config file")
	flag.Parse()

	cfg := twirc.DefaultConfig()
	if *configPath != "" {
		loaded, err := twirc.LoadConfig(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "twircdump: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	out := os.Stdout
	var w io.Writer = out
	if isatty.IsTerminal(out.Fd()) {
		w = colorable.NewColorable(out)
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: w}).With().Timestamp().Logger()

	var in io.Reader = os.Stdin
	if flag.NArg() > 0 {
		f, err := os.Open(flag.Arg(0))
		if err != nil {
			log.Fatal().Err(err).Msg("open input")
		}
		defer f.Close()
		in = f
	}

	dec := twirc.NewBatchDecoder(in, cfg, log)
	for {
		msg, ok := dec.Next()
		if !ok {
			break
		}
		dumpMessage(msg)
	}
	if err := dec.Err(); err != nil {
		log.Fatal().Err(err).Msg("read input")
	}

	total, dropped := dec.Stats()
	log.Info().Uint64("total", total).Uint64("dropped", dropped).Msg("done")
}

func dumpMessage(msg twirc.Message) {
	switch t := msg.Typed.(type) {
	case twirc.Privmsg:
		fmt.Printf("#%s <%s> %s\n", t.Channel, t.SenderLogin, t.Text)
	case twirc.Whisper:
		fmt.Printf("(whisper) <%s> %s\n", t.SenderLogin, t.Text)
	case twirc.ClearChat:
		fmt.Printf("#%s clearchat: %s %s\n", t.Channel, t.Action, t.TargetLogin)
	case twirc.UserNotice:
		fmt.Printf("#%s usernotice(%s): %s\n", t.Channel, t.MsgID, t.SystemMsg)
	case twirc.Notice:
		fmt.Printf("#%s notice: %s\n", t.Channel, t.Text)
	case twirc.RoomState:
		fmt.Printf("#%s roomstate\n", t.Channel)
	default:
		cmd, _ := msg.View.Prefix()
		fmt.Printf("%s %s\n", msg.View.Command(), cmd)
	}
}
