package catalog

// words is the built-in curriculum. IDs follow "<grade>-<n>" and must
// never be reused for a different word.
var words = []WordEntry{
	// Grade 1
	{ID: "1-0a", English: "hello", Translation: "你好", Phonetic: "/həˈləʊ/", Grade: 1, Unit: 0, VisualCue: "👋"},
	{ID: "1-0b", English: "bye", Translation: "再见", Phonetic: "/baɪ/", Grade: 1, Unit: 0, VisualCue: "🙋"},
	{ID: "1-1", English: "apple", Translation: "苹果", Phonetic: "/ˈæpl/", Grade: 1, Unit: 1, VisualCue: "🍎"},
	{ID: "1-2", English: "banana", Translation: "香蕉", Phonetic: "/bəˈnɑːnə/", Grade: 1, Unit: 1, VisualCue: "🍌"},
	{ID: "1-3", English: "cat", Translation: "猫", Phonetic: "/kæt/", Grade: 1, Unit: 2, VisualCue: "🐱"},
	{ID: "1-4", English: "dog", Translation: "狗", Phonetic: "/dɒɡ/", Grade: 1, Unit: 2, VisualCue: "🐶"},
	{ID: "1-5", English: "elephant", Translation: "大象", Phonetic: "/ˈelɪfənt/", Grade: 1, Unit: 3, VisualCue: "🐘"},
	{ID: "1-6", English: "fish", Translation: "鱼", Phonetic: "/fɪʃ/", Grade: 1, Unit: 3, VisualCue: "🐟"},
	{ID: "1-7", English: "girl", Translation: "女孩", Phonetic: "/ɡɜːl/", Grade: 1, Unit: 4, VisualCue: "👧"},
	{ID: "1-8", English: "hand", Translation: "手", Phonetic: "/hænd/", Grade: 1, Unit: 4, VisualCue: "✋"},
	{ID: "1-9", English: "ice", Translation: "冰", Phonetic: "/aɪs/", Grade: 1, Unit: 5, VisualCue: "🧊"},
	{ID: "1-10", English: "juice", Translation: "果汁", Phonetic: "/dʒuːs/", Grade: 1, Unit: 5, VisualCue: "🍹"},
	{ID: "1-11", English: "kite", Translation: "风筝", Phonetic: "/kaɪt/", Grade: 1, Unit: 6, VisualCue: "🪁"},
	{ID: "1-12", English: "lion", Translation: "狮子", Phonetic: "/ˈlaɪən/", Grade: 1, Unit: 6, VisualCue: "🦁"},

	// Grade 2
	{ID: "2-1", English: "red", Translation: "红色", Phonetic: "/red/", Grade: 2, Unit: 1, VisualCue: "🟥"},
	{ID: "2-2", English: "blue", Translation: "蓝色", Phonetic: "/bluː/", Grade: 2, Unit: 1, VisualCue: "🟦"},
	{ID: "2-3", English: "green", Translation: "绿色", Phonetic: "/ɡriːn/", Grade: 2, Unit: 1, VisualCue: "🟩"},
	{ID: "2-4", English: "mother", Translation: "妈妈", Phonetic: "/ˈmʌðə(r)/", Grade: 2, Unit: 2, VisualCue: "👩"},
	{ID: "2-5", English: "father", Translation: "爸爸", Phonetic: "/ˈfɑːðə(r)/", Grade: 2, Unit: 2, VisualCue: "👨"},
	{ID: "2-6", English: "sister", Translation: "姐妹", Phonetic: "/ˈsɪstə(r)/", Grade: 2, Unit: 2, VisualCue: "👭"},
	{ID: "2-7", English: "sun", Translation: "太阳", Phonetic: "/sʌn/", Grade: 2, Unit: 3, VisualCue: "☀️"},
	{ID: "2-8", English: "moon", Translation: "月亮", Phonetic: "/muːn/", Grade: 2, Unit: 3, VisualCue: "🌙"},
	{ID: "2-9", English: "star", Translation: "星星", Phonetic: "/stɑː(r)/", Grade: 2, Unit: 3, VisualCue: "⭐"},
	{ID: "2-10", English: "rain", Translation: "雨", Phonetic: "/reɪn/", Grade: 2, Unit: 4, VisualCue: "🌧️"},

	// Grade 3
	{ID: "3-1", English: "school", Translation: "学校", Phonetic: "/skuːl/", Grade: 3, Unit: 1, VisualCue: "🏫"},
	{ID: "3-2", English: "pencil", Translation: "铅笔", Phonetic: "/ˈpensl/", Grade: 3, Unit: 1, VisualCue: "✏️"},
	{ID: "3-3", English: "friend", Translation: "朋友", Phonetic: "/frend/", Grade: 3, Unit: 2, VisualCue: "🧑‍🤝‍🧑"},
	{ID: "3-4", English: "teacher", Translation: "老师", Phonetic: "/ˈtiːtʃə(r)/", Grade: 3, Unit: 2, VisualCue: "👩‍🏫"},
	{ID: "3-5", English: "classroom", Translation: "教室", Phonetic: "/ˈklɑːsruːm/", Grade: 3, Unit: 3, VisualCue: "🚪"},
	{ID: "3-6", English: "window", Translation: "窗户", Phonetic: "/ˈwɪndəʊ/", Grade: 3, Unit: 3, VisualCue: "🪟"},
	{ID: "3-7", English: "blackboard", Translation: "黑板", Phonetic: "/ˈblækbɔːd/", Grade: 3, Unit: 4, VisualCue: "📋"},
	{ID: "3-8", English: "computer", Translation: "电脑", Phonetic: "/kəmˈpjuːtə(r)/", Grade: 3, Unit: 4, VisualCue: "💻"},
	{ID: "3-9", English: "fan", Translation: "风扇", Phonetic: "/fæn/", Grade: 3, Unit: 5, VisualCue: "🌀"},
	{ID: "3-10", English: "light", Translation: "灯", Phonetic: "/laɪt/", Grade: 3, Unit: 5, VisualCue: "💡"},

	// Grade 4
	{ID: "4-1", English: "breakfast", Translation: "早餐", Phonetic: "/ˈbrekfəst/", Grade: 4, Unit: 1, VisualCue: "🥣"},
	{ID: "4-2", English: "dinner", Translation: "晚餐", Phonetic: "/ˈdɪnə(r)/", Grade: 4, Unit: 1, VisualCue: "🍽️"},
	{ID: "4-3", English: "kitchen", Translation: "厨房", Phonetic: "/ˈkɪtʃɪn/", Grade: 4, Unit: 2, VisualCue: "🍳"},
	{ID: "4-4", English: "bedroom", Translation: "卧室", Phonetic: "/ˈbedruːm/", Grade: 4, Unit: 2, VisualCue: "🛏️"},
	{ID: "4-5", English: "library", Translation: "图书馆", Phonetic: "/ˈlaɪbrəri/", Grade: 4, Unit: 3, VisualCue: "📚"},
	{ID: "4-6", English: "playground", Translation: "操场", Phonetic: "/ˈpleɪɡraʊnd/", Grade: 4, Unit: 3, VisualCue: "🛝"},
	{ID: "4-7", English: "weather", Translation: "天气", Phonetic: "/ˈweðə(r)/", Grade: 4, Unit: 4, VisualCue: "⛅"},
	{ID: "4-8", English: "warm", Translation: "温暖的", Phonetic: "/wɔːm/", Grade: 4, Unit: 4, VisualCue: "🌤️"},
	{ID: "4-9", English: "farmer", Translation: "农民", Phonetic: "/ˈfɑːmə(r)/", Grade: 4, Unit: 5, VisualCue: "🧑‍🌾"},
	{ID: "4-10", English: "doctor", Translation: "医生", Phonetic: "/ˈdɒktə(r)/", Grade: 4, Unit: 5, VisualCue: "🧑‍⚕️"},

	// Grade 5
	{ID: "5-1", English: "mountain", Translation: "山", Phonetic: "/ˈmaʊntən/", Grade: 5, Unit: 1, VisualCue: "⛰️"},
	{ID: "5-2", English: "river", Translation: "河流", Phonetic: "/ˈrɪvə(r)/", Grade: 5, Unit: 1, VisualCue: "🏞️"},
	{ID: "5-3", English: "forest", Translation: "森林", Phonetic: "/ˈfɒrɪst/", Grade: 5, Unit: 2, VisualCue: "🌲"},
	{ID: "5-4", English: "bridge", Translation: "桥", Phonetic: "/brɪdʒ/", Grade: 5, Unit: 2, VisualCue: "🌉"},
	{ID: "5-5", English: "holiday", Translation: "假期", Phonetic: "/ˈhɒlədeɪ/", Grade: 5, Unit: 3, VisualCue: "🏖️"},
	{ID: "5-6", English: "ticket", Translation: "票", Phonetic: "/ˈtɪkɪt/", Grade: 5, Unit: 3, VisualCue: "🎫"},
	{ID: "5-7", English: "hospital", Translation: "医院", Phonetic: "/ˈhɒspɪtl/", Grade: 5, Unit: 4, VisualCue: "🏥"},
	{ID: "5-8", English: "medicine", Translation: "药", Phonetic: "/ˈmedsn/", Grade: 5, Unit: 4, VisualCue: "💊"},
	{ID: "5-9", English: "exercise", Translation: "锻炼", Phonetic: "/ˈeksəsaɪz/", Grade: 5, Unit: 5, VisualCue: "🏃"},
	{ID: "5-10", English: "healthy", Translation: "健康的", Phonetic: "/ˈhelθi/", Grade: 5, Unit: 5, VisualCue: "💪"},

	// Grade 6
	{ID: "6-1", English: "environment", Translation: "环境", Phonetic: "/ɪnˈvaɪrənmənt/", Grade: 6, Unit: 1, VisualCue: "🌍"},
	{ID: "6-2", English: "traditional", Translation: "传统的", Phonetic: "/trəˈdɪʃənl/", Grade: 6, Unit: 1, VisualCue: "🏮"},
	{ID: "6-3", English: "experience", Translation: "经验；经历", Phonetic: "/ɪkˈspɪəriəns/", Grade: 6, Unit: 2, VisualCue: "🏔️"},
	{ID: "6-4", English: "celebration", Translation: "庆祝", Phonetic: "/ˌselɪˈbreɪʃn/", Grade: 6, Unit: 2, VisualCue: "🎉"},
	{ID: "6-5", English: "museum", Translation: "博物馆", Phonetic: "/mjuˈziːəm/", Grade: 6, Unit: 3, VisualCue: "🏛️"},
	{ID: "6-6", English: "pollution", Translation: "污染", Phonetic: "/pəˈluːʃn/", Grade: 6, Unit: 3, VisualCue: "🏭"},
	{ID: "6-7", English: "protection", Translation: "保护", Phonetic: "/prəˈtekʃn/", Grade: 6, Unit: 4, VisualCue: "🛡️"},
	{ID: "6-8", English: "scientist", Translation: "科学家", Phonetic: "/ˈsaɪəntɪst/", Grade: 6, Unit: 4, VisualCue: "🔬"},
	{ID: "6-9", English: "technology", Translation: "技术", Phonetic: "/tekˈnɒlədʒi/", Grade: 6, Unit: 5, VisualCue: "🧪"},
	{ID: "6-10", English: "volunteer", Translation: "志愿者", Phonetic: "/ˌvɒlənˈtɪə(r)/", Grade: 6, Unit: 5, VisualCue: "🙋"},
}
