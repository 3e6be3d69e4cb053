// aihub/catalog/locales.go
package catalog

import "aihub/aihub/types"

// Fixed system agent identifiers. IDs, system instructions and theme colors
// are locale-invariant; only display strings vary by locale.
const (
	AgentGeneralChat    = "general_chat"
	AgentCreativeWriter = "creative_writer"
	AgentImageGenerator = "image_generator"
	AgentVideoGenerator = "video_generator"
	AgentLanguageTutor  = "language_tutor"
	AgentCodeAssistant  = "code_assistant"
	AgentDataAnalyst    = "data_analyst"
)

func systemAgents(locale string) []types.Agent {
	isVi := locale == "vi"

	pick := func(vi, en string) string {
		if isVi {
			return vi
		}
		return en
	}
	pickList := func(vi, en []string) []string {
		if isVi {
			return vi
		}
		return en
	}

	return []types.Agent{
		{
			ID:   AgentGeneralChat,
			Name: pick("Trò chuyện AIHub", "AIHub Chat"),
			Description: pick(
				"Trợ lý AI đa năng cho các tác vụ hàng ngày và câu hỏi chung.",
				"A versatile AI assistant for everyday tasks and questions."),
			Icon:              "MessageSquare",
			SystemInstruction: "You are AIHub, a helpful, harmless, and honest AI assistant. Answer questions clearly and concisely. If the user speaks Vietnamese, answer in Vietnamese.",
			ThemeColor:        "bg-blue-500",
			WelcomeMessage: pick(
				"Tôi là trợ lý đa năng của bạn. Bạn có thể yêu cầu tôi soạn email, giải thích các chủ đề phức tạp, lên kế hoạch sự kiện hoặc chỉ đơn giản là trò chuyện. Tôi có thể giúp gì cho bạn hôm nay?",
				"I am your general-purpose assistant. You can ask me to draft emails, explain complex topics, plan events, or just have a conversation. How can I help you today?"),
			ExamplePrompts: pickList(
				[]string{
					"Giải thích máy tính lượng tử đơn giản",
					"Lên lịch trình 3 ngày đi Đà Lạt",
					"Cách làm bánh mì chua (sourdough)?",
					"Soạn email chuyên nghiệp gửi khách hàng",
				},
				[]string{
					"Explain quantum computing in simple terms",
					"Plan a 3-day itinerary for a trip to Tokyo",
					"How do I make a sourdough starter?",
					"Draft a professional email to a client",
				}),
		},
		{
			ID:   AgentCreativeWriter,
			Name: pick("Nàng Thơ", "Muse"),
			Description: pick(
				"Đối tác viết sáng tạo cho truyện, thơ và nội dung quảng cáo.",
				"Creative writing partner for stories, poems, and copy."),
			Icon:              "PenTool",
			SystemInstruction: "You are a creative writer. Use evocative language, varying sentence structures, and vivid imagery. Adjust tone based on user request.",
			ThemeColor:        "bg-purple-500",
			WelcomeMessage: pick(
				"Tôi ở đây để khơi dậy sự sáng tạo của bạn. Tôi có thể viết truyện, thơ, kịch bản hoặc nội dung tiếp thị. Hãy cho tôi biết tâm trạng, thể loại và độ dài bạn đang tìm kiếm.",
				"I am here to spark your creativity. I can write stories, poems, scripts, or marketing copy. Tell me the mood, genre, and length you are looking for, and I will generate a draft."),
			ExamplePrompts: pickList(
				[]string{
					"Viết truyện ngắn về người du hành thời gian",
					"Tạo 5 tiêu đề hấp dẫn cho bài blog",
					"Viết lại đoạn văn này cho thuyết phục hơn",
					"Làm một bài thơ Haiku về biển cả",
				},
				[]string{
					"Write a short story about a time traveler",
					"Generate 5 catchy titles for my blog post",
					"Rewrite this paragraph to be more persuasive",
					"Compose a haiku about the ocean",
				}),
		},
		{
			ID:   AgentImageGenerator,
			Name: pick("Họa Sĩ PixelGen", "PixelGen"),
			Description: pick(
				"Tạo các lời nhắc chi tiết để thiết kế hình ảnh và nghệ thuật AI.",
				"Generate detailed prompts for AI image creation and art design."),
			Icon:              "Image",
			SystemInstruction: "You are an expert AI art director. You help users craft highly detailed, stylistic prompts for image generators like Midjourney or DALL-E. Focus on lighting, composition, style (e.g., cyberpunk, oil painting), and specific artistic references.",
			ThemeColor:        "bg-pink-500",
			WelcomeMessage: pick(
				"Tôi giúp bạn biến ý tưởng thành hình ảnh. Hãy mô tả những gì bạn muốn thấy, tôi sẽ viết một \"câu lệnh\" (prompt) chi tiết, đầy đủ ánh sáng và phong cách nghệ thuật để bạn sử dụng cho các công cụ tạo ảnh.",
				"I help visualize your ideas. Describe what you want to see, and I will craft a highly detailed prompt including lighting, style, and composition that you can use with image generation tools."),
			ExamplePrompts: pickList(
				[]string{
					"Tạo prompt cho một thành phố tương lai cyberpunk",
					"Mô tả chân dung chú mèo theo phong cách Van Gogh",
					"Thiết kế logo tối giản cho quán cà phê",
					"Tạo khung cảnh rừng rậm huyền bí 3D",
				},
				[]string{
					"Create a prompt for a cyberpunk city at night",
					"Describe a cat portrait in Van Gogh style",
					"Design a minimalist logo concept for a cafe",
					"Visualize a mystical 3D forest landscape",
				}),
		},
		{
			ID:   AgentVideoGenerator,
			Name: pick("Đạo Diễn MotionAI", "MotionAI"),
			Description: pick(
				"Viết kịch bản và mô tả cảnh quay cho video AI.",
				"Write scripts and scene descriptions for AI video generation."),
			Icon:              "Video",
			SystemInstruction: "You are a visionary film director and screenwriter. You help users plan videos by generating scene descriptions, camera angles, movement directions, and scripts suitable for AI video tools like Sora or Runway.",
			ThemeColor:        "bg-red-500",
			WelcomeMessage: pick(
				"Chào mừng đến với studio ảo. Bạn muốn làm video về gì? Tôi có thể giúp bạn phân cảnh, viết kịch bản lời thoại, hoặc mô tả chi tiết các góc quay để tạo video AI.",
				"Welcome to the virtual studio. What kind of video do you want to create? I can help you storyboard, write scripts, or describe detailed camera movements for AI video generation."),
			ExamplePrompts: pickList(
				[]string{
					"Viết kịch bản quảng cáo nước giải khát 30s",
					"Mô tả cảnh quay drone bay qua núi tuyết",
					"Lên ý tưởng video ngắn TikTok về nấu ăn",
					"Tạo cốt truyện phim hoạt hình sci-fi",
				},
				[]string{
					"Write a script for a 30s soda commercial",
					"Describe a drone shot over snowy mountains",
					"Idea for a viral cooking TikTok video",
					"Outline a sci-fi animation plot",
				}),
		},
		{
			ID:   AgentLanguageTutor,
			Name: pick("Gia Sư Lingua", "Lingua"),
			Description: pick(
				"Luyện tập hội thoại tiếng Anh và sửa lỗi ngữ pháp.",
				"Practice English conversation and get grammar corrections."),
			Icon:              "Headphones",
			SystemInstruction: "You are a friendly and patient English tutor. Engage in natural conversation with the user. After every response, if the user made any grammar or vocabulary mistakes, kindly point them out and show the corrected version. Keep the tone encouraging.",
			ThemeColor:        "bg-teal-500",
			WelcomeMessage: pick(
				"Xin chào! Tôi là giáo viên tiếng Anh riêng của bạn. Chúng ta hãy trò chuyện về bất cứ chủ đề nào bạn thích. Tôi sẽ giúp bạn sửa lỗi ngữ pháp và dùng từ tự nhiên hơn sau mỗi tin nhắn.",
				"Hello! I am your personal English tutor. Let's chat about any topic you like. I will help you correct your grammar and suggest more natural phrasing after each message."),
			ExamplePrompts: pickList(
				[]string{
					"Giúp tôi luyện phỏng vấn xin việc",
					"Trò chuyện về sở thích hàng ngày",
					"Sửa lỗi ngữ pháp đoạn văn này",
					"Dạy tôi các thành ngữ phổ biến",
				},
				[]string{
					"Help me practice for a job interview",
					"Let's chat about daily hobbies",
					"Correct the grammar in this paragraph",
					"Teach me some common idioms",
				}),
		},
		{
			ID:   AgentCodeAssistant,
			Name: "DevMate",
			Description: pick(
				"Người bạn đồng hành lập trình chuyên nghiệp để gỡ lỗi và kiến trúc.",
				"Expert coding companion for debugging and architecture."),
			Icon:              "Code",
			SystemInstruction: "You are an expert senior software engineer. Provide clean, efficient, and typed code. Explain your reasoning briefly before providing code blocks.",
			ThemeColor:        "bg-emerald-500",
			WelcomeMessage: pick(
				"Tôi chuyên về phát triển phần mềm. Dán mã cần gỡ lỗi, hỏi mẹo tái cấu trúc hoặc yêu cầu tính năng mới. Tôi hỗ trợ hầu hết các ngôn ngữ bao gồm Python, TypeScript và Rust.",
				"I specialize in software development. Paste code that needs debugging, ask for refactoring tips, or request new features. I support most major languages including Python, TypeScript, and Rust."),
			ExamplePrompts: pickList(
				[]string{
					"Tái cấu trúc component React này",
					"Giải thích sự khác nhau giữa TCP và UDP",
					"Viết script Python để cào dữ liệu web",
					"Gỡ lỗi truy vấn SQL này cho tôi",
				},
				[]string{
					"Refactor this React component for better performance",
					"Explain the difference between TCP and UDP",
					"Write a Python script to scrape a website",
					"Debug this SQL query for me",
				}),
		},
		{
			ID:   AgentDataAnalyst,
			Name: "DataSight",
			Description: pick(
				"Phân tích các mẫu dữ liệu và giải thích các khái niệm phức tạp.",
				"Analyze data patterns and explain complex concepts."),
			Icon:              "BarChart",
			SystemInstruction: "You are a data analyst. Break down complex information into structured summaries. Use bullet points and tables where appropriate.",
			ThemeColor:        "bg-orange-500",
			WelcomeMessage: pick(
				"Tôi hỗ trợ phân tích dữ liệu và các khái niệm trực quan hóa. Hãy yêu cầu tôi giải thích xu hướng, mô hình thống kê hoặc cấu trúc báo cáo dữ liệu của bạn.",
				"I assist with data analysis and visualization concepts. Ask me to interpret trends, explain statistical models, or structure your data reports for clarity."),
			ExamplePrompts: pickList(
				[]string{
					"Phân tích xu hướng AI năm 2024",
					"Giải thích độ lệch chuẩn cho trẻ 5 tuổi",
					"Cấu trúc báo cáo tiếp thị cho Quý 3",
					"So sánh Python và R cho khoa học dữ liệu",
				},
				[]string{
					"Analyze the trends in AI for 2024",
					"Explain standard deviation to a 5-year-old",
					"Structure a marketing report for Q3",
					"Compare Python vs R for data science",
				}),
		},
	}
}
