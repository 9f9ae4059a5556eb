package mediainfo

func findField(fields []Field, name string) string {
	value, _ := lookupField(fields, name)
	return value
}
