package gametype

import "playcraft-backend/internal/models"

// Archetype describes one entry in the fixed game-mechanic catalog.
// The catalog is built at init and never mutated at runtime; callers that
// need settings must go through DefaultSettings, which hands out a copy.
type Archetype struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`

	defaults models.GenerationSettings
	keywords []string
	subjects []string
}

// DefaultSettings returns a copy of the archetype's settings template.
func (a *Archetype) DefaultSettings() models.GenerationSettings {
	return a.defaults
}

// DefaultArchetypeID is returned by Classify when no archetype scores.
const DefaultArchetypeID = "quiz"

var catalog = []*Archetype{
	{
		ID:          "quiz",
		Name:        "Câu hỏi trắc nghiệm",
		Description: "Chuỗi câu hỏi trắc nghiệm có nhiều lựa chọn. Chọn đáp án đúng để tiếp tục qua câu tiếp theo.",
		Icon:        "award",
		defaults:    models.GenerationSettings{Difficulty: "medium", QuestionCount: 10, TimePerQuestion: 30, Category: "general"},
		keywords:    []string{"trắc nghiệm", "câu hỏi", "quiz", "kiểm tra"},
	},
	{
		ID:          "flashcards",
		Name:        "Thẻ ghi nhớ hai mặt",
		Description: "Thẻ có nội dung ở một mặt và câu trả lời ở mặt còn lại. Tự kiểm tra bản thân bằng cách lật mặt sau xem đáp án.",
		Icon:        "rotate-ccw",
		defaults:    models.GenerationSettings{Difficulty: "medium", QuestionCount: 12, TimePerQuestion: 20, Category: "general"},
		keywords:    []string{"thẻ ghi nhớ", "flashcard", "lật thẻ"},
	},
	{
		ID:          "matchup",
		Name:        "Ghép cặp thông tin",
		Description: "Các từ hoặc khái niệm và định nghĩa rời rạc. Kéo và thả từng từ vào đúng định nghĩa của nó.",
		Icon:        "puzzle",
		defaults:    models.GenerationSettings{Difficulty: "medium", QuestionCount: 8, TimePerQuestion: 40, Category: "general"},
		keywords:    []string{"ghép cặp", "nối", "matching"},
	},
	{
		ID:          "anagram",
		Name:        "Xáo trộn chữ cái",
		Description: "Một từ hoặc cụm từ bị xáo trộn chữ cái. Kéo các chữ cái vào đúng vị trí để tạo ra từ đúng.",
		Icon:        "shuffle",
		defaults:    models.GenerationSettings{Difficulty: "medium", QuestionCount: 8, TimePerQuestion: 45, Category: "general"},
		keywords:    []string{"xáo trộn chữ", "anagram"},
	},
	{
		ID:          "speakingcards",
		Name:        "Thẻ hội thoại",
		Description: "Bộ bài gồm nhiều chủ đề hoặc câu hỏi. Rút ngẫu nhiên một thẻ và diễn đạt ý tưởng theo nội dung trên thẻ.",
		Icon:        "message-square",
		defaults:    models.GenerationSettings{Difficulty: "medium", QuestionCount: 10, TimePerQuestion: 60, Category: "general"},
		keywords:    []string{"hội thoại", "thuyết trình", "speaking"},
	},
	{
		ID:          "findmatch",
		Name:        "Tìm cặp đôi",
		Description: "Cặp thông tin bị trộn lẫn. Nhấn vào hai mục khớp nhau để loại bỏ. Làm đến khi hết.",
		Icon:        "layers",
		defaults:    models.GenerationSettings{Difficulty: "medium", QuestionCount: 10, TimePerQuestion: 3, Category: "general"},
		keywords:    []string{"tìm cặp", "cặp đôi"},
	},
	{
		ID:          "unjumble",
		Name:        "Sắp xếp từ thành câu",
		Description: "Một câu bị trộn lộn từ. Kéo và thả các từ để sắp xếp lại câu đúng ngữ pháp.",
		Icon:        "sort-asc",
		defaults:    models.GenerationSettings{Difficulty: "medium", QuestionCount: 8, TimePerQuestion: 40, Category: "general"},
		keywords:    []string{"sắp xếp từ", "ghép câu", "unjumble"},
	},
	{
		ID:          "openbox",
		Name:        "Mở hộp bí mật",
		Description: "Hộp được đánh số, mỗi hộp chứa một câu hỏi hoặc phần thưởng. Nhấn vào từng hộp để mở nội dung bên trong.",
		Icon:        "blocks",
		defaults:    models.GenerationSettings{Difficulty: "medium", QuestionCount: 10, TimePerQuestion: 30, Category: "general"},
		keywords:    []string{"mở hộp", "hộp bí mật"},
	},
	{
		ID:          "spinwheel",
		Name:        "Vòng quay may mắn",
		Description: "Bánh xe có các lựa chọn ngẫu nhiên. Nhấn xoay và thực hiện nhiệm vụ ở ô đã dừng.",
		Icon:        "dices",
		defaults:    models.GenerationSettings{Difficulty: "medium", QuestionCount: 12, TimePerQuestion: 30, Category: "general"},
		keywords:    []string{"vòng quay", "quay số", "may mắn"},
	},
	{
		ID:          "groupsort",
		Name:        "Phân loại thành nhóm",
		Description: "Các mục rời rạc thuộc nhiều nhóm khác nhau. Kéo và thả vào nhóm đúng.",
		Icon:        "layers",
		defaults:    models.GenerationSettings{Difficulty: "medium", QuestionCount: 15, TimePerQuestion: 45, Category: "general"},
		keywords:    []string{"phân loại", "chia nhóm"},
	},
	{
		ID:          "matchpairs",
		Name:        "Ghép cặp hình giống nhau",
		Description: "Các ô ẩn, mỗi cặp là một sự khớp về nghĩa hoặc hình. Lật 2 ô một lượt, nếu trùng thì giữ lại.",
		Icon:        "puzzle",
		defaults:    models.GenerationSettings{Difficulty: "medium", QuestionCount: 8, TimePerQuestion: 3, Category: "general"},
		keywords:    []string{"lật ô", "memory"},
	},
	{
		ID:          "sentence",
		Name:        "Điền từ vào chỗ trống",
		Description: "Câu bị bỏ trống từ hoặc cụm từ. Kéo thả đúng từ vào chỗ trống để hoàn chỉnh câu.",
		Icon:        "pen-tool",
		defaults:    models.GenerationSettings{Difficulty: "medium", QuestionCount: 10, TimePerQuestion: 30, Category: "general"},
		keywords:    []string{"điền từ", "chỗ trống"},
	},
	{
		ID:          "gameshow",
		Name:        "Trò chơi truyền hình",
		Description: "Giống show truyền hình đố vui, có điểm số và áp lực thời gian. Có thể có trợ giúp.",
		Icon:        "sparkles",
		defaults:    models.GenerationSettings{Difficulty: "medium", QuestionCount: 10, TimePerQuestion: 20, Category: "general"},
		keywords:    []string{"truyền hình", "gameshow"},
	},
	{
		ID:          "fliptiles",
		Name:        "Thẻ lật đôi",
		Description: "Bộ thẻ hai mặt với nội dung liên quan. Nhấn lật từng thẻ để xem thông tin và tìm cặp.",
		Icon:        "rotate-ccw",
		defaults:    models.GenerationSettings{Difficulty: "medium", QuestionCount: 10, TimePerQuestion: 3, Category: "general"},
		keywords:    []string{"thẻ lật"},
	},
	{
		ID:          "wordsearch",
		Name:        "Tìm từ trong ô chữ",
		Description: "Một lưới chữ cái có giấu các từ vựng. Tìm và tô đậm các từ được yêu cầu càng nhanh càng tốt.",
		Icon:        "book-open",
		defaults:    models.GenerationSettings{Difficulty: "medium", QuestionCount: 10, TimePerQuestion: 120, Category: "general", GridSize: 12},
		keywords:    []string{"tìm từ", "ô chữ ẩn", "word search"},
		subjects:    []string{"từ vựng", "vocabulary"},
	},
	{
		ID:          "spellword",
		Name:        "Đánh vần từ",
		Description: "Một từ bị trống chữ. Kéo các chữ cái vào đúng vị trí để hoàn thành từ.",
		Icon:        "pen-tool",
		defaults:    models.GenerationSettings{Difficulty: "medium", QuestionCount: 12, TimePerQuestion: 30, Category: "general"},
		keywords:    []string{"đánh vần", "spelling"},
		subjects:    []string{"từ vựng", "vocabulary"},
	},
	{
		ID:          "labelled",
		Name:        "Gắn nhãn vào hình",
		Description: "Hình minh họa cần gắn nhãn đúng vị trí. Kéo các nhãn vào vị trí đúng trên sơ đồ.",
		Icon:        "image",
		defaults:    models.GenerationSettings{Difficulty: "medium", QuestionCount: 8, TimePerQuestion: 60, Category: "science"},
		keywords:    []string{"gắn nhãn", "sơ đồ"},
		subjects:    []string{"sinh học", "giải phẫu"},
	},
	{
		ID:          "crossword",
		Name:        "Ô chữ",
		Description: "Trò chơi giải ô chữ với gợi ý. Nhấn vào một ô, đọc gợi ý, rồi nhập từ đúng vào ô đó.",
		Icon:        "grid-3x3",
		defaults:    models.GenerationSettings{Difficulty: "medium", QuestionCount: 15, TimePerQuestion: 300, Category: "general", GridSize: 15},
		keywords:    []string{"giải ô chữ", "crossword"},
	},
	{
		ID:          "hangman",
		Name:        "Treo người",
		Description: "Đoán từng chữ cái để hoàn thành từ. Đoán sai nhiều lần là thua.",
		Icon:        "shapes",
		defaults:    models.GenerationSettings{Difficulty: "medium", QuestionCount: 8, TimePerQuestion: 60, Category: "general"},
		keywords:    []string{"treo người", "đoán chữ", "hangman"},
	},
	{
		ID:          "imagequiz",
		Name:        "Câu đố hình ảnh",
		Description: "Hình ảnh dần hé lộ, ai bấm chuông đầu tiên sẽ được trả lời câu hỏi.",
		Icon:        "image",
		defaults:    models.GenerationSettings{Difficulty: "medium", QuestionCount: 8, TimePerQuestion: 15, Category: "general"},
		keywords:    []string{"đoán hình", "câu đố hình"},
	},
	{
		ID:          "flyingfruit",
		Name:        "Hái quả bay",
		Description: "Các đáp án bay ngang màn hình, bạn phải nhấn đúng khi thấy đáp án đúng.",
		Icon:        "zap",
		defaults:    models.GenerationSettings{Difficulty: "medium", QuestionCount: 15, TimePerQuestion: 3, Category: "general"},
		keywords:    []string{"hái quả"},
	},
	{
		ID:          "truefalse",
		Name:        "Đúng hay sai",
		Description: "Mỗi phát biểu xuất hiện nhanh, chọn đúng hoặc sai trong thời gian giới hạn.",
		Icon:        "check",
		defaults:    models.GenerationSettings{Difficulty: "medium", QuestionCount: 15, TimePerQuestion: 10, Category: "general"},
		keywords:    []string{"đúng sai", "đúng hay sai", "true false"},
	},
	{
		ID:          "mazechase",
		Name:        "Đuổi bắt trong mê cung",
		Description: "Điều khiển nhân vật chạy đến đáp án đúng, tránh va vào vật cản.",
		Icon:        "target",
		defaults:    models.GenerationSettings{Difficulty: "medium", QuestionCount: 5, TimePerQuestion: 30, Category: "general"},
		keywords:    []string{"mê cung", "maze"},
	},
	{
		ID:          "balloonpop",
		Name:        "Bắn bong bóng",
		Description: "Bắn bong bóng chứa từ để kéo vào đúng định nghĩa.",
		Icon:        "zap",
		defaults:    models.GenerationSettings{Difficulty: "medium", QuestionCount: 15, TimePerQuestion: 2, Category: "general"},
		keywords:    []string{"bong bóng", "balloon"},
	},
	{
		ID:          "whackamole",
		Name:        "Đập chuột",
		Description: "Chuột hiện lên từng con, đập đúng con mang đáp án chính xác.",
		Icon:        "gamepad",
		defaults:    models.GenerationSettings{Difficulty: "medium", QuestionCount: 15, TimePerQuestion: 2, Category: "general"},
		keywords:    []string{"đập chuột"},
	},
	{
		ID:          "memorize",
		Name:        "Trò chơi ghi nhớ",
		Description: "Xem một loạt vật phẩm xuất hiện, sau đó chọn lại đúng các món đã thấy.",
		Icon:        "brain-circuit",
		defaults:    models.GenerationSettings{Difficulty: "medium", QuestionCount: 8, TimePerQuestion: 3, Category: "general"},
		keywords:    []string{"ghi nhớ", "trí nhớ"},
	},
	{
		ID:          "airplane",
		Name:        "Lái máy bay tìm đáp án",
		Description: "Điều khiển máy bay bay qua đáp án đúng, né các đáp án sai.",
		Icon:        "plane",
		defaults:    models.GenerationSettings{Difficulty: "medium", QuestionCount: 10, TimePerQuestion: 5, Category: "general"},
		keywords:    []string{"máy bay"},
	},
	{
		ID:          "rankorder",
		Name:        "Sắp xếp theo thứ tự",
		Description: "Kéo và thả các mục theo thứ tự đúng, ví dụ từ nhỏ đến lớn hoặc theo thời gian.",
		Icon:        "sort-asc",
		defaults:    models.GenerationSettings{Difficulty: "medium", QuestionCount: 8, TimePerQuestion: 45, Category: "general"},
		keywords:    []string{"thứ tự", "xếp hạng"},
	},
	{
		ID:          "winlosequiz",
		Name:        "Đặt cược điểm số",
		Description: "Chọn số điểm đặt cược cho từng câu, đúng thì được, sai thì mất điểm.",
		Icon:        "badge-dollar-sign",
		defaults:    models.GenerationSettings{Difficulty: "medium", QuestionCount: 10, TimePerQuestion: 30, Category: "general", BonusTime: 5, PenaltyTime: 5},
		keywords:    []string{"đặt cược", "cá cược điểm"},
	},
	{
		ID:          "mathgenerator",
		Name:        "Bài tập toán",
		Description: "Chọn chủ đề toán học, hệ thống sẽ tạo ra loạt câu hỏi tự động.",
		Icon:        "calculator",
		defaults:    models.GenerationSettings{Difficulty: "medium", QuestionCount: 10, TimePerQuestion: 30, Category: "math"},
		keywords:    []string{"bài tập toán", "phép tính"},
		subjects:    []string{"toán", "tính toán", "math"},
	},
	{
		ID:          "wordmagnets",
		Name:        "Từ nam châm",
		Description: "Kéo thả các từ hoặc chữ cái như nam châm để tạo thành câu hoàn chỉnh.",
		Icon:        "book-open",
		defaults:    models.GenerationSettings{Difficulty: "medium", QuestionCount: 8, TimePerQuestion: 45, Category: "general"},
		keywords:    []string{"nam châm", "từ kéo thả"},
	},
}

// All returns the catalog in registration order.
func All() []*Archetype {
	out := make([]*Archetype, len(catalog))
	copy(out, catalog)
	return out
}

// ByID looks up an archetype by its identifier.
func ByID(id string) (*Archetype, bool) {
	for _, a := range catalog {
		if a.ID == id {
			return a, true
		}
	}
	return nil, false
}
