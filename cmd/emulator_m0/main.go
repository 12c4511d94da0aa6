// This file is part of emulator_m0.
//
// emulator_m0 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// emulator_m0 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with emulator_m0.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"syscall"

	"github.com/bradleyjkemp/memviz"
	"github.com/go-echarts/statsview"
	"github.com/pkg/term/termios"
	"github.com/spf13/cobra"

	"github.com/m0sim/emulator_m0/arm"
	"github.com/m0sim/emulator_m0/logger"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "emulator_m0",
		Short: "ARM Cortex-M0 Thumb instruction-set simulator",
	}

	var verbose bool
	var interactive bool
	var dumpGraph string
	var profileAddr string

	runCmd := &cobra.Command{
		Use:   "run CODE_SIZE CODE_FILE SRAM_SIZE SRAM_FILE NUM_INSTR",
		Short: "Load a code and SRAM image, reset, and step NUM_INSTR instructions",
		Args:  cobra.ExactArgs(5),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEmulator(args, verbose, interactive, dumpGraph, profileAddr)
		},
	}
	runCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "trace every fetched instruction")
	runCmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "single-step on keypress")
	runCmd.Flags().StringVar(&dumpGraph, "dump-graph", "", "write a Graphviz dot file of the final register file and PSR")
	runCmd.Flags().StringVar(&profileAddr, "profile-addr", "", "serve a runtime stats dashboard at this address while running")

	rootCmd.AddCommand(runCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runEmulator(args []string, verbose, interactive bool, dumpGraph, profileAddr string) error {
	codeSize, err := strconv.Atoi(args[0])
	if err != nil || codeSize <= 0 {
		return fmt.Errorf("CODE_SIZE must be a positive integer: %q", args[0])
	}
	sramSize, err := strconv.Atoi(args[2])
	if err != nil || sramSize <= 0 {
		return fmt.Errorf("SRAM_SIZE must be a positive integer: %q", args[2])
	}
	numInstr, err := strconv.Atoi(args[4])
	if err != nil || numInstr < 0 {
		return fmt.Errorf("NUM_INSTR must be a non-negative integer: %q", args[4])
	}

	code, err := loadImage(args[1], codeSize)
	if err != nil {
		return fmt.Errorf("loading code image: %w", err)
	}
	sram, err := loadImage(args[3], sramSize)
	if err != nil {
		return fmt.Errorf("loading SRAM image: %w", err)
	}

	if profileAddr != "" {
		viewer := statsview.New(statsview.WithAddr(profileAddr))
		go viewer.Start()
	}

	log := logger.NewLogger(256)
	prefs := arm.DefaultPreferences()
	prefs.Verbose = verbose

	mmu := arm.NewMMU(code, sram, nil)
	cpu := arm.NewCPU(mmu, log, prefs)
	cpu.Reset()

	if interactive {
		err = runInteractive(cpu, numInstr)
	} else {
		err = cpu.RunN(numInstr)
	}

	if log != nil {
		log.Write(os.Stdout)
	}

	if dumpGraph != "" {
		if dumpErr := dumpRegisterGraph(cpu, dumpGraph); dumpErr != nil {
			fmt.Fprintf(os.Stderr, "warning: --dump-graph: %v\n", dumpErr)
		}
	}

	if err != nil {
		return fmt.Errorf("run: %w", err)
	}
	return nil
}

// loadImage reads path raw into a buffer of exactly size bytes; a file
// shorter than size is zero-padded, one longer is truncated, matching the
// original CLI's "read raw, up to CODE_SIZE bytes" contract.
func loadImage(path string, size int) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	buf := make([]byte, size)
	if _, err := io.ReadFull(f, buf); err != nil &&
		!errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return nil, err
	}
	return buf, nil
}

// runInteractive puts the controlling terminal into raw mode and advances
// the CPU one instruction per keypress, printing the register file and PSR
// after each step. Any key other than 'q' steps; 'q' exits early.
func runInteractive(cpu *arm.CPU, numInstr int) error {
	var saved syscall.Termios
	if err := termios.Tcgetattr(os.Stdin.Fd(), &saved); err != nil {
		return fmt.Errorf("interactive mode requires a terminal: %w", err)
	}
	raw := saved
	termios.Cfmakeraw(&raw)
	if err := termios.Tcsetattr(os.Stdin.Fd(), termios.TCIFLUSH, &raw); err != nil {
		return err
	}
	defer termios.Tcsetattr(os.Stdin.Fd(), termios.TCIFLUSH, &saved)

	reader := bufio.NewReader(os.Stdin)
	for i := 0; i < numInstr; i++ {
		if cpu.Halted() {
			return nil
		}

		b, err := reader.ReadByte()
		if err != nil {
			return err
		}
		if b == 'q' {
			return nil
		}

		if err := cpu.Step(); err != nil {
			return err
		}
		printState(cpu)
	}
	return nil
}

func printState(cpu *arm.CPU) {
	for i := 0; i < arm.NumRegisters; i++ {
		fmt.Printf("\rR%-2d=%#08x ", i, cpu.Regs.Get(i))
		if i%4 == 3 {
			fmt.Print("\n")
		}
	}
	fmt.Printf("PSR=%s\n", cpu.PSR.String())
}

// dumpRegisterGraph renders the register file and PSR as a Graphviz dot
// file for post-mortem inspection.
func dumpRegisterGraph(cpu *arm.CPU, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	snapshot := struct {
		Regs arm.Registers
		PSR  arm.PSR
	}{cpu.Regs, cpu.PSR}

	memviz.Map(f, &snapshot)
	return nil
}
