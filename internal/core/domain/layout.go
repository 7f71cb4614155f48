package domain

const (
	// ObfuscarDirName is the project subdirectory holding the obfuscator and its configs.
	ObfuscarDirName = "_Obfuscar"

	// ConsoleExeName is the file name of the obfuscator console executable.
	ConsoleExeName = "Obfuscar.Console.exe"

	// BaseConfigFileName is the file name of the base obfuscator config.
	BaseConfigFileName = "obfuscar.xml"

	// SettingsFileName is the default name of the tool settings file.
	SettingsFileName = "obtools.yaml"

	// ObfuscatorEnvVar overrides the location of the obfuscator executable to install.
	ObfuscatorEnvVar = "OBTOOLS_OBFUSCATOR"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)
