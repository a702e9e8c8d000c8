package entity

// Nomes das colunas do relatório CSV, na ordem em que são escritas.
const (
	ColumnAccountName = "aws_accountName"
	ColumnAccountID   = "aws_accountId"
	ColumnBucketName  = "s3_bucketName"
)

// Identity is the caller identity resolved for a profile.
type Identity struct {
	Profile   string `json:"profile"`
	AccountID string `json:"account_id"`
}

// BucketRecord is one row of the inventory: one bucket owned by one account.
type BucketRecord struct {
	AccountName string `json:"aws_accountName"`
	AccountID   string `json:"aws_accountId"`
	BucketName  string `json:"s3_bucketName"`
}

// NewBucketRecords builds one record per bucket name for the given identity.
// The account display name is the profile name.
func NewBucketRecords(identity Identity, bucketNames []string) []BucketRecord {
	records := make([]BucketRecord, 0, len(bucketNames))
	for _, name := range bucketNames {
		records = append(records, BucketRecord{
			AccountName: identity.Profile,
			AccountID:   identity.AccountID,
			BucketName:  name,
		})
	}
	return records
}

// ReportTable accumulates records across profiles under a fixed column schema.
type ReportTable struct {
	records []BucketRecord
}

// NewReportTable creates an empty table.
func NewReportTable() *ReportTable {
	return &ReportTable{records: []BucketRecord{}}
}

// Header returns the column names in output order.
func (t *ReportTable) Header() []string {
	return []string{ColumnAccountName, ColumnAccountID, ColumnBucketName}
}

// Append adds records in order.
func (t *ReportTable) Append(records ...BucketRecord) {
	t.records = append(t.records, records...)
}

// Len returns the number of records.
func (t *ReportTable) Len() int {
	if t == nil {
		return 0
	}
	return len(t.records)
}

// Records returns a copy of the accumulated records.
func (t *ReportTable) Records() []BucketRecord {
	out := make([]BucketRecord, len(t.records))
	copy(out, t.records)
	return out
}

// Rows renders every record as a slice of cells aligned with Header.
func (t *ReportTable) Rows() [][]string {
	rows := make([][]string, 0, len(t.records))
	for _, r := range t.records {
		rows = append(rows, []string{r.AccountName, r.AccountID, r.BucketName})
	}
	return rows
}
