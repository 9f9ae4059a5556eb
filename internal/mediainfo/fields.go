package mediainfo

func appendFieldUnique(fields []Field, field Field) []Field {
	for _, existing := range fields {
		if existing.Name == field.Name {
			return fields
		}
	}
	return append(fields, field)
}

func setFieldValue(fields []Field, name, value string) []Field {
	for i := range fields {
		if fields[i].Name == name {
			fields[i].Value = value
			return fields
		}
	}
	return append(fields, Field{Name: name, Value: value})
}

func lookupField(fields []Field, name string) (string, bool) {
	for _, field := range fields {
		if field.Name == name {
			return field.Value, true
		}
	}
	return "", false
}

// chapterRange reports the half-open range of contiguous chapter fields,
// starting at the first field whose name is a chapter timestamp.
func chapterRange(fields []Field) (int, int, bool) {
	begin := -1
	for i, field := range fields {
		if isChapterTime(field.Name) {
			begin = i
			break
		}
	}
	if begin < 0 {
		return 0, 0, false
	}
	end := begin
	for end < len(fields) && isChapterTime(fields[end].Name) {
		end++
	}
	return begin, end, true
}
