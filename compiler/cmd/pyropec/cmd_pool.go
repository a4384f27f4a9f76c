package main

import (
	"flag"

	"github.com/pyrope-lang/pyrope/compiler/internal/mempool"
	"github.com/pyrope-lang/pyrope/compiler/internal/term"
)

/* ---------- pool: slot allocator demo ---------- */

func cmdPool(args []string) int {
	fs := flag.NewFlagSet("pool", flag.ContinueOnError)
	fs.SetOutput(term.Err)
	reserve := fs.Int("reserve", 10, "slots to pre-populate")
	size := fs.Int("size", 4, "bytes to allocate")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if *reserve < 0 || *size < 0 || fs.NArg() > 0 {
		term.Eprintln("usage: pyropec pool [--reserve=N] [--size=N]")
		return 2
	}

	p := mempool.New()
	p.Reserve(*reserve)

	s := p.AllocSlot(*size)
	s.Retain()
	s.Fill(0x21)
	term.Printf("%s\n", s.Hex())
	s.Fill(0x44)
	term.Printf("%s\n", s.Hex())
	s.Release()

	swept := p.Sweep()
	term.Printf("slots=%d free=%d swept=%d\n", p.Len(), p.Free(), swept)
	return 0
}
