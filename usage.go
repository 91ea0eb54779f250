package envconf

// UsageIndent is the number of spaces before each field line in usage.
const UsageIndent = 1

// Usage writes the usage text to the registry output:
//
//	usage:
//
//	<description>
//
//	Config Environment Variables:
//	 PREFIX_NAME - help (default=value)
//
// Keys are padded to the longest registered key.
func (r *Registry) Usage() {
	r.printf("\nusage:\n\n")

	if r.description != "" {
		r.printf("%s\n\n", r.description)
	}

	if len(r.fields) == 0 {
		return
	}

	r.printf("Config Environment Variables:\n")

	for _, field := range r.fields {
		r.printf("%s\n", field.describe(UsageIndent, r.width))
	}
}
