package utils

func SafeSlice(slice []string, max int) []string {
	if len(slice) < max {
		return slice
	}
	return slice[:max]
}

func StringInSlice(target string, list []string) bool {
	for _, item := range list {
		if item == target {
			return true
		}
	}
	return false
}
