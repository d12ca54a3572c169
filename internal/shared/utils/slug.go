package utils

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

var (
	nonSlugChars = regexp.MustCompile(`[^a-z0-9\s-]+`)
	whitespace   = regexp.MustCompile(`\s+`)
	hyphenRuns   = regexp.MustCompile(`-+`)
	plainTerm    = regexp.MustCompile(`^[a-zA-Z\s]+$`)
)

// GenerateSlug chuyển title thành URL slug
// "Bóng Đá Việt Nam!" → "bong-da-viet-nam"
func GenerateSlug(input string) string {
	// Bước 1: Bỏ dấu tiếng Việt
	ascii := RemoveDiacritics(input)

	// Bước 2: Lowercase
	lower := strings.ToLower(ascii)

	// Bước 3: Bỏ ký tự đặc biệt (giữ a-z, 0-9, khoảng trắng, gạch ngang)
	cleaned := nonSlugChars.ReplaceAllString(lower, "")

	// Bước 4: Khoảng trắng → gạch ngang, gộp gạch ngang liên tiếp
	hyphenated := whitespace.ReplaceAllString(strings.TrimSpace(cleaned), "-")
	normalized := hyphenRuns.ReplaceAllString(hyphenated, "-")

	return strings.Trim(normalized, "-")
}

// GenerateArticleSlug tạo slug cho bài viết với timestamp suffix.
// Suffix đảm bảo unique mà không cần check database; title trống vẫn
// cho ra slug hợp lệ ("-1700000000000").
func GenerateArticleSlug(title string) string {
	return fmt.Sprintf("%s-%d", GenerateSlug(title), time.Now().UnixMilli())
}

// RemoveDiacritics map ký tự có dấu về ký tự base
// (tất cả các tone của "a" => "a")
func RemoveDiacritics(input string) string {
	result := make([]rune, 0, len(input))
	for _, r := range input {
		if replacement, ok := diacriticMap[r]; ok {
			result = append(result, replacement)
		} else {
			result = append(result, r)
		}
	}
	return string(result)
}

// HasDiacritics báo input có chứa ký tự có dấu hay không.
func HasDiacritics(input string) bool {
	for _, r := range input {
		if _, ok := diacriticMap[r]; ok {
			return true
		}
	}
	return false
}

// IsPlainSearchTerm báo term chỉ gồm chữ cái và khoảng trắng.
// Chỉ những term như vậy mới được match thêm trên slug fragment.
func IsPlainSearchTerm(term string) bool {
	return term != "" && plainTerm.MatchString(term)
}

var diacriticMap = map[rune]rune{
	// Vowel A
	'á': 'a', 'à': 'a', 'ả': 'a', 'ã': 'a', 'ạ': 'a',
	'ă': 'a', 'ắ': 'a', 'ằ': 'a', 'ẳ': 'a', 'ẵ': 'a', 'ặ': 'a',
	'â': 'a', 'ấ': 'a', 'ầ': 'a', 'ẩ': 'a', 'ẫ': 'a', 'ậ': 'a',

	// Vowel E
	'é': 'e', 'è': 'e', 'ẻ': 'e', 'ẽ': 'e', 'ẹ': 'e',
	'ê': 'e', 'ế': 'e', 'ề': 'e', 'ể': 'e', 'ễ': 'e', 'ệ': 'e',

	// Vowel I
	'í': 'i', 'ì': 'i', 'ỉ': 'i', 'ĩ': 'i', 'ị': 'i',

	// Vowel O
	'ó': 'o', 'ò': 'o', 'ỏ': 'o', 'õ': 'o', 'ọ': 'o',
	'ô': 'o', 'ố': 'o', 'ồ': 'o', 'ổ': 'o', 'ỗ': 'o', 'ộ': 'o',
	'ơ': 'o', 'ớ': 'o', 'ờ': 'o', 'ở': 'o', 'ỡ': 'o', 'ợ': 'o',

	// Vowel U
	'ú': 'u', 'ù': 'u', 'ủ': 'u', 'ũ': 'u', 'ụ': 'u',
	'ư': 'u', 'ứ': 'u', 'ừ': 'u', 'ử': 'u', 'ữ': 'u', 'ự': 'u',

	// Vowel Y
	'ý': 'y', 'ỳ': 'y', 'ỷ': 'y', 'ỹ': 'y', 'ỵ': 'y',

	// Consonant D
	'đ': 'd',

	// UPPERCASE
	'Á': 'A', 'À': 'A', 'Ả': 'A', 'Ã': 'A', 'Ạ': 'A',
	'Ă': 'A', 'Ắ': 'A', 'Ằ': 'A', 'Ẳ': 'A', 'Ẵ': 'A', 'Ặ': 'A',
	'Â': 'A', 'Ấ': 'A', 'Ầ': 'A', 'Ẩ': 'A', 'Ẫ': 'A', 'Ậ': 'A',

	'É': 'E', 'È': 'E', 'Ẻ': 'E', 'Ẽ': 'E', 'Ẹ': 'E',
	'Ê': 'E', 'Ế': 'E', 'Ề': 'E', 'Ể': 'E', 'Ễ': 'E', 'Ệ': 'E',

	'Í': 'I', 'Ì': 'I', 'Ỉ': 'I', 'Ĩ': 'I', 'Ị': 'I',

	'Ó': 'O', 'Ò': 'O', 'Ỏ': 'O', 'Õ': 'O', 'Ọ': 'O',
	'Ô': 'O', 'Ố': 'O', 'Ồ': 'O', 'Ổ': 'O', 'Ỗ': 'O', 'Ộ': 'O',
	'Ơ': 'O', 'Ớ': 'O', 'Ờ': 'O', 'Ở': 'O', 'Ỡ': 'O', 'Ợ': 'O',

	'Ú': 'U', 'Ù': 'U', 'Ủ': 'U', 'Ũ': 'U', 'Ụ': 'U',
	'Ư': 'U', 'Ứ': 'U', 'Ừ': 'U', 'Ử': 'U', 'Ữ': 'U', 'Ự': 'U',

	'Ý': 'Y', 'Ỳ': 'Y', 'Ỷ': 'Y', 'Ỹ': 'Y', 'Ỵ': 'Y',

	'Đ': 'D',
}
