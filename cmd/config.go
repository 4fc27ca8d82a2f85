package cmd

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	// Timezone is the warehouse location; the pickup calendar and the
	// nightly sweep run in it.
	Timezone string

	SMTPHost           string
	SMTPPort           string
	SMTPUsername       string
	SMTPPassword       string
	SMTPFrom           string
	StaffInbox         string
	PartnerEmailDomain string
}
