package exporter

import (
	"fmt"
	"io"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/apache/arrow-go/v18/parquet"
	"github.com/apache/arrow-go/v18/parquet/compress"
	"github.com/apache/arrow-go/v18/parquet/pqarrow"

	"acctfilter/internal/table"
)

// ParquetEncoder writes a single row group, Snappy compressed. Each column
// gets the narrowest type that holds all of its present cells: float64,
// boolean or UTC microsecond timestamp when the cells agree, string
// otherwise. Missing and non-finite cells become nulls.
type ParquetEncoder struct{}

// Encode implements Encoder
func (ParquetEncoder) Encode(w io.Writer, t *table.Table) error {
	schema := arrowSchema(t)

	b := array.NewRecordBuilder(memory.NewGoAllocator(), schema)
	defer b.Release()

	for i := range t.Columns() {
		appendColumn(b.Field(i), t, i)
	}
	rec := b.NewRecord()
	defer rec.Release()

	props := parquet.NewWriterProperties(parquet.WithCompression(compress.Codecs.Snappy))
	arrowProps := pqarrow.NewArrowWriterProperties(pqarrow.WithStoreSchema())

	fw, err := pqarrow.NewFileWriter(schema, w, props, arrowProps)
	if err != nil {
		return fmt.Errorf("failed to create parquet writer: %w", err)
	}
	if err := fw.Write(rec); err != nil {
		fw.Close()
		return fmt.Errorf("failed to write parquet rows: %w", err)
	}
	if err := fw.Close(); err != nil {
		return fmt.Errorf("failed to finish parquet file: %w", err)
	}
	return nil
}

func arrowSchema(t *table.Table) *arrow.Schema {
	fields := make([]arrow.Field, t.Width())
	for i, name := range t.Columns() {
		fields[i] = arrow.Field{Name: name, Type: columnType(t, i), Nullable: true}
	}
	return arrow.NewSchema(fields, nil)
}

// columnType picks the arrow type for column i
func columnType(t *table.Table, i int) arrow.DataType {
	kind := table.KindMissing
	for _, r := range t.Rows() {
		v := r[i]
		if v.IsMissing() {
			continue
		}
		if kind == table.KindMissing {
			kind = v.Kind()
			continue
		}
		if v.Kind() != kind {
			return arrow.BinaryTypes.String
		}
	}

	switch kind {
	case table.KindNumber:
		return arrow.PrimitiveTypes.Float64
	case table.KindBool:
		return arrow.FixedWidthTypes.Boolean
	case table.KindTime:
		return arrow.FixedWidthTypes.Timestamp_us
	}
	return arrow.BinaryTypes.String
}

func appendColumn(fb array.Builder, t *table.Table, i int) {
	for _, r := range t.Rows() {
		v := r[i]
		if v.IsMissing() || v.IsNonFinite() {
			fb.AppendNull()
			continue
		}
		switch b := fb.(type) {
		case *array.Float64Builder:
			f, _ := v.Float()
			b.Append(f)
		case *array.BooleanBuilder:
			flag, _ := v.Boolean()
			b.Append(flag)
		case *array.TimestampBuilder:
			at, _ := v.Instant()
			b.Append(arrow.Timestamp(at.UTC().UnixMicro()))
		case *array.StringBuilder:
			b.Append(v.String())
		}
	}
}
