package constants

// 配置器选项组常量
const (
	ModifierGroupSize       = "sizes"
	ModifierGroupBaseSize   = "base_sizes"
	ModifierGroupFlowerSize = "flower_sizes"
	ModifierGroupPolish     = "polish_types"
	ModifierGroupMaterial   = "materials"
	ModifierGroupEngraving  = "engravings"
)

// 抛光类型常量
const (
	PolishTypeMirror   = "mirror"
	PolishTypeCombined = "combined"
)

// 无选项表时的兜底选项键
const (
	FallbackPolishKey   = "mirror"
	FallbackMaterialKey = "black_granite"
)

// 抛光类型兜底展示名（选项表缺失时使用）
const (
	PolishLabelMirror   = "Зеркальная"
	PolishLabelCombined = "Комбинированная"
)

// 材质兜底展示名（选项表缺失时使用）
const MaterialLabelBlackGranite = "Гранит черный"

// 组合抛光加价系数（在加价项之后对小计整体上浮 15%）
const CombinedPolishSurchargeFactor = "1.15"

// 快速加购常量
const (
	QuickAddIdentitySuffix = "default"
	QuickAddDescription    = "Стандартная комплектация"
)

// 快速加购的标准配置展示值
const (
	QuickAddSizeLabel       = "100x50x5"
	QuickAddBaseSizeLabel   = "60x15x15"
	QuickAddFlowerSizeLabel = "100x50"
	QuickAddPolishLabel     = "Зеркальная"
	QuickAddMaterialLabel   = "Гранит черный"
)

// 尺寸类配置组未选中时的展示值
const CharacteristicDefaultValue = "Стандарт"

// 配置摘要字段标签
const (
	CharacteristicSizeLabel       = "Размер стелы"
	CharacteristicBaseSizeLabel   = "Размер подставки"
	CharacteristicFlowerSizeLabel = "Размер цветника"
	CharacteristicPolishLabel     = "Полировка"
	CharacteristicMaterialLabel   = "Материал"
	CharacteristicEngravingLabel  = "Гравировка"
)

// 货号前缀（货号 = 前缀 + 商品 ID）
const ArticleNumberPrefix = "00"

// 购物车快照键前缀，完整键为 cart:<session-id>
const CartSnapshotKeyPrefix = "cart:"

// 缓存默认配置常量
const (
	RedisPrefixDefault = "granit"
)

// 购物车快照存储后端常量
const (
	CartStoreDB    = "db"
	CartStoreRedis = "redis"
)
