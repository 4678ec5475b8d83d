package main

import (
	"context"
	"fmt"
	"time"

	"github.com/olgasafonova/gtin-mcp-server/gtin12"
	"github.com/olgasafonova/gtin-mcp-server/gtin13"
	"github.com/olgasafonova/gtin-mcp-server/gtin14"
	"github.com/olgasafonova/gtin-mcp-server/gtin8"
	"github.com/olgasafonova/gtin-mcp-server/internal/validator"
)

const iterations = 1_000_000

// Sinks keep the compiler from eliding the measured calls.
var (
	sinkBool bool
	sinkStr  string
	sinkErr  error
)

// measure runs fn in a loop and prints per-call latency and throughput.
func measure(name string, n int, fn func()) {
	start := time.Now()
	for i := 0; i < n; i++ {
		fn()
	}
	elapsed := time.Since(start)
	fmt.Printf("   %-30s %8.1f ns/op  %12.0f ops/sec\n",
		name,
		float64(elapsed.Nanoseconds())/float64(n),
		float64(n)/elapsed.Seconds())
}

// measureCheckPerformance times validation of well-formed codes at every length.
func measureCheckPerformance() {
	fmt.Println("=== Check Performance ===")
	fmt.Println()
	fmt.Println("1. Valid codes:")
	measure("gtin8.Check", iterations, func() { sinkBool = gtin8.Check("49137712") })
	measure("gtin12.Check", iterations, func() { sinkBool = gtin12.Check("036000291452") })
	measure("gtin13.Check", iterations, func() { sinkBool = gtin13.Check("8845791354268") })
	measure("gtin14.Check", iterations, func() { sinkBool = gtin14.Check("17342894127884") })
	fmt.Println()

	fmt.Println("2. All-zero codes:")
	measure("gtin8.Check", iterations, func() { sinkBool = gtin8.Check("00000000") })
	measure("gtin12.Check", iterations, func() { sinkBool = gtin12.Check("000000000000") })
	measure("gtin13.Check", iterations, func() { sinkBool = gtin13.Check("0000000000000") })
	measure("gtin14.Check", iterations, func() { sinkBool = gtin14.Check("00000000000000") })
	fmt.Println()

	fmt.Println("3. Rejected codes (wrong length, bad digit, bad checksum):")
	measure("wrong length", iterations, func() { sinkBool = gtin13.Check("49137712") })
	measure("non-digit", iterations, func() { sinkBool = gtin13.Check("88457913542x8") })
	measure("checksum mismatch", iterations, func() { sinkBool = gtin13.Check("8845791354267") })
	fmt.Println()
}

// measureFixPerformance times normalization, the common spreadsheet repair path.
func measureFixPerformance() {
	fmt.Println("=== Fix Performance ===")
	fmt.Println()
	fmt.Println("4. Normalization:")
	measure("already normalized", iterations, func() { sinkStr, sinkErr = gtin12.Fix("036000291452") })
	measure("restore leading zero", iterations, func() { sinkStr, sinkErr = gtin12.Fix("36000291452") })
	measure("trim whitespace", iterations, func() { sinkStr, sinkErr = gtin8.Fix("  49137712  ") })
	measure("rejected checksum", iterations, func() { sinkStr, sinkErr = gtin14.Fix("14567815983468") })
	fmt.Println()
}

// measureBatchPerformance times the batch path used by the gtin_batch_check tool.
func measureBatchPerformance() {
	fmt.Println("=== Batch Performance ===")
	fmt.Println()

	svc := validator.NewService(validator.Config{BatchLimit: 1000})
	ctx := context.Background()

	codes := make([]string, 0, 500)
	for i := 0; i < 500; i++ {
		switch i % 3 {
		case 0:
			codes = append(codes, "0123456789012") // valid
		case 1:
			codes = append(codes, "123012301238") // needs a leading zero
		default:
			codes = append(codes, "0123456789013") // checksum mismatch
		}
	}

	fmt.Printf("5. BatchCheck with %d codes:\n", len(codes))

	start := time.Now()
	result, err := svc.BatchCheckMCP(ctx, validator.BatchCheckArgs{Codes: codes, Length: 13})
	if err != nil {
		fmt.Printf("   Error: %v\n", err)
		return
	}
	checkTime := time.Since(start)
	fmt.Printf("   Check mode: %v (%d valid, %d invalid)\n", checkTime, result.Valid, result.Invalid)

	start = time.Now()
	result, err = svc.BatchCheckMCP(ctx, validator.BatchCheckArgs{Codes: codes, Length: 13, Fix: true})
	if err != nil {
		fmt.Printf("   Error: %v\n", err)
		return
	}
	fixTime := time.Since(start)
	fmt.Printf("   Fix mode:   %v (%d valid, %d invalid)\n", fixTime, result.Valid, result.Invalid)
	fmt.Printf("   Per code:   %v\n", fixTime/time.Duration(len(codes)))
	fmt.Println()
}

func main() {
	fmt.Println("GTIN MCP Server - Performance Measurements")
	fmt.Println("==========================================")
	fmt.Println()

	measureCheckPerformance()
	measureFixPerformance()
	measureBatchPerformance()

	fmt.Println("=== Summary ===")
	fmt.Println()
	fmt.Println("Key characteristics:")
	fmt.Println("• Validation is allocation-free: a single pass over the digit bytes")
	fmt.Println("• Fix allocates only when the code actually needs padding or trimming")
	fmt.Println("• Batch throughput scales linearly, the per-call MCP overhead dominates")
	fmt.Println("• All operations are pure CPU, no network or I/O in any path")
}
