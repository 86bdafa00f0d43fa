package code

// 成功码
var (
	Success               = NewSuss(200, lang{en: "Success", zh_cn: "成功"})
	SuccessCreate         = NewSuss(201, lang{en: "Created successfully", zh_cn: "创建成功"})
	SuccessUpdate         = NewSuss(202, lang{en: "Updated successfully", zh_cn: "更新成功"})
	SuccessDelete         = NewSuss(203, lang{en: "Deleted successfully", zh_cn: "删除成功"})
	SuccessPasswordUpdate = NewSuss(204, lang{en: "Password updated successfully", zh_cn: "密码修改成功"})
)

// 通用错误
var (
	Failed              = NewError(10000, lang{en: "Failed", zh_cn: "失败"})
	ErrorServerInternal = NewError(10001, lang{en: "Internal server error", zh_cn: "服务内部错误"})
	ErrorInvalidParams  = NewError(10002, lang{en: "Invalid request parameters", zh_cn: "入参错误"})
	ErrorNotFoundAPI    = NewError(10003, lang{en: "API not found", zh_cn: "接口不存在"})
	ErrorTooManyRequest = NewError(10004, lang{en: "Too many requests", zh_cn: "请求过多"})
	ErrorDBQuery        = NewError(10005, lang{en: "Database query error", zh_cn: "数据库查询错误"})
)

// 鉴权错误
var (
	ErrorNotUserAuthToken     = NewError(20001, lang{en: "Missing auth token", zh_cn: "缺少认证 Token"})
	ErrorInvalidUserAuthToken = NewError(20002, lang{en: "Invalid auth token", zh_cn: "无效的认证 Token"})
	ErrorTokenGenerate        = NewError(20003, lang{en: "Token generation failed", zh_cn: "Token 生成失败"})
	ErrorAccessDenied         = NewError(20004, lang{en: "You are not allowed to access this resource", zh_cn: "无权访问该资源"})
)

// 用户错误
var (
	ErrorUserNotFound            = NewError(21001, lang{en: "User not found", zh_cn: "用户不存在"})
	ErrorUserAlreadyExists       = NewError(21002, lang{en: "Username already exists", zh_cn: "用户名已存在"})
	ErrorUserEmailAlreadyExists  = NewError(21003, lang{en: "Email already exists", zh_cn: "邮箱已存在"})
	ErrorUserRegister            = NewError(21004, lang{en: "Registration failed", zh_cn: "注册失败"})
	ErrorUserRegisterIsDisable   = NewError(21005, lang{en: "Registration is disabled", zh_cn: "注册功能已关闭"})
	ErrorUserLoginPasswordFailed = NewError(21006, lang{en: "Incorrect username or password", zh_cn: "用户名或密码错误"})
	ErrorUserOldPasswordFailed   = NewError(21007, lang{en: "Old password is incorrect", zh_cn: "旧密码错误"})
	ErrorUserPasswordNotMatch    = NewError(21008, lang{en: "Passwords do not match", zh_cn: "两次输入的密码不一致"})
	ErrorUserUsernameNotValid    = NewError(21009, lang{en: "Invalid username format", zh_cn: "用户名格式不正确"})
	ErrorPasswordNotValid        = NewError(21010, lang{en: "Invalid password", zh_cn: "密码不合法"})
)

// 文件夹错误
var (
	ErrorFolderNotFound    = NewError(22001, lang{en: "Folder not found", zh_cn: "文件夹不存在"})
	ErrorFolderNameInvalid = NewError(22002, lang{en: "Invalid folder name", zh_cn: "文件夹名称不合法"})
)

// 文件错误
var (
	ErrorFileNotFound    = NewError(23001, lang{en: "File not found", zh_cn: "文件不存在"})
	ErrorFileNameInvalid = NewError(23002, lang{en: "Invalid file name", zh_cn: "文件名称不合法"})
	ErrorFileUpload      = NewError(23003, lang{en: "File upload failed", zh_cn: "文件上传失败"})
	ErrorFileTooLarge    = NewError(23004, lang{en: "File exceeds the size limit", zh_cn: "文件超出大小限制"})
)

// 存储错误
var (
	ErrorInvalidStorageType = NewError(24001, lang{en: "Invalid storage type", zh_cn: "无效的存储类型"})
	ErrorStorageUpload      = NewError(24002, lang{en: "Storage write failed", zh_cn: "存储写入失败"})
	ErrorStorageRead        = NewError(24003, lang{en: "Storage read failed", zh_cn: "存储读取失败"})
)
