// Command yadcat builds a small YAD container, serializes it, then
// decodes the bytes back and prints a listing. It exists to exercise
// the codec end-to-end, the same role the teacher's examples/ demos
// play for its blob encoders.
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/arloliu/yad/container"
	"github.com/arloliu/yad/record"
	"github.com/arloliu/yad/value"
)

func main() {
	verbose := flag.Bool("v", false, "print the content hash alongside the listing")
	flag.Parse()

	c := container.New(container.NewVersion(1, 0, 0, 0))

	cpu := record.NewRow("cpu")
	if err := cpu.AddKey(record.NewKey("usage_pct", value.NewFloat32(42.5))); err != nil {
		log.Fatalf("add key: %v", err)
	}
	if err := cpu.AddKey(record.NewKey("cores", value.NewUint8(8))); err != nil {
		log.Fatalf("add key: %v", err)
	}
	if err := c.AddRow(cpu); err != nil {
		log.Fatalf("add row: %v", err)
	}

	mem := record.NewRow("memory")
	if err := mem.AddKey(record.NewKey("used_bytes", value.NewUint64(4294967296))); err != nil {
		log.Fatalf("add key: %v", err)
	}
	if err := mem.AddKey(record.NewKey("tags", value.NewArray([]value.Value{
		value.NewString("prod"),
		value.NewString("us-east"),
	}))); err != nil {
		log.Fatalf("add key: %v", err)
	}
	if err := c.AddRow(mem); err != nil {
		log.Fatalf("add row: %v", err)
	}

	data, err := c.Serialize()
	if err != nil {
		log.Fatalf("serialize: %v", err)
	}

	fmt.Printf("serialized %d bytes\n", len(data))

	decoded, err := container.Deserialize(data)
	if err != nil {
		log.Fatalf("deserialize: %v", err)
	}

	fmt.Printf("version %s\n", decoded.Version)

	for _, row := range decoded.Rows() {
		fmt.Printf("row %q:\n", row.Name)
		for _, k := range row.Keys() {
			fmt.Printf("  %s: %s = %v\n", k.Name, k.Value.Kind(), renderValue(k.Value))
		}
	}

	if *verbose {
		h, err := decoded.ContentHash()
		if err != nil {
			log.Fatalf("content hash: %v", err)
		}
		fmt.Printf("content hash: %016x\n", h)
	}
}

func renderValue(v value.Value) any {
	if v.Kind() != value.KindArray {
		return valueScalar(v)
	}

	arr, _ := v.AsArray()
	out := make([]any, len(arr))
	for i, el := range arr {
		out[i] = renderValue(el)
	}

	return out
}

func valueScalar(v value.Value) any {
	switch v.Kind() {
	case value.KindString:
		s, _ := v.AsString()
		return s
	case value.KindBool:
		b, _ := v.AsBool()
		return b
	case value.KindFloat32:
		f, _ := v.AsFloat32()
		return f
	case value.KindFloat16:
		f, _ := v.AsFloat16()
		return f
	case value.KindFloat8:
		f, _ := v.AsFloat8()
		return f
	case value.KindFloat64:
		f, _ := v.AsFloat64()
		return f
	default:
		if v.IsNumeric() {
			return renderInt(v)
		}

		return "<unsupported>"
	}
}

func renderInt(v value.Value) any {
	switch v.Kind() {
	case value.KindUint8:
		n, _ := v.AsUint8()
		return n
	case value.KindUint16:
		n, _ := v.AsUint16()
		return n
	case value.KindUint32:
		n, _ := v.AsUint32()
		return n
	case value.KindUint64:
		n, _ := v.AsUint64()
		return n
	case value.KindInt8:
		n, _ := v.AsInt8()
		return n
	case value.KindInt16:
		n, _ := v.AsInt16()
		return n
	case value.KindInt32:
		n, _ := v.AsInt32()
		return n
	case value.KindInt64:
		n, _ := v.AsInt64()
		return n
	default:
		return "<unsupported>"
	}
}
