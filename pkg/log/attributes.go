package log

// Standard attribute keys for structured log events. Using these keys keeps
// field names consistent across commands and transforms.
const (
	// TransformKey identifies the transform emitting the event.
	// Examples: "RareLabelGrouper", "TopKDummyEncoder"
	TransformKey = "transform"

	// OperationKey names the lifecycle operation. Standard values:
	// "fit", "transform", "fit_transform".
	OperationKey = "operation"

	// ColumnKey names the column being processed.
	ColumnKey = "column"

	// RowsKey is the number of rows in the input.
	RowsKey = "rows"

	// DistinctKey is the number of distinct labels observed.
	DistinctKey = "distinct_labels"

	// ThresholdKey is the rare-label proportion threshold in effect.
	ThresholdKey = "threshold"

	// TopKKey is the dummy-encoder category count in effect.
	TopKKey = "top_k"
)
