package i18n

var translations = map[string]map[string]string{
	LanguageEnglish: {
		"common.cancelled":              "Operation cancelled.",
		"common.cancel_warning_partial": "Warning: the device may be left in a partially modified state.",
		"common.empty":                  "EMPTY",
		"common.unknown":                "Unknown",
		"common.needs_root":             "This tool must be run as root (try again with sudo).",
		"common.retries_exceeded":       "No valid answer after {attempts} attempts, aborting.",

		"progress.restore":                 "Restoring",
		"progress.partitioning":            "Partitioning",
		"progress.installation":            "Installing",
		"progress.unmounting_disk":         "Unmounting disk...",
		"progress.creating_partition_table": "Creating partition table...",
		"progress.waiting_partitions":      "Activating partitions...",
		"progress.formatting_partitions":   "Formatting partitions...",
		"progress.mounting_volumes":        "Mounting volumes...",
		"progress.erasing_partition":       "Erasing partition...",
		"progress.formatting_disk":         "Formatting disk...",
		"progress.creating_partition":      "Creating partition...",
		"progress.mounting_volume":         "Mounting volume...",
		"progress.done":                    "Done!",
		"progress.erasing_volume":          "Erasing volume...",
		"progress.copying_files":           "Copying files...",
		"progress.installing":              "Installing...",
		"progress.installing_base_system":  "Installing base system...",
		"progress.installing_packages":     "Installing packages...",

		"disk.search_error":           "Error while searching for disks: {error}",
		"disk.none_detected":          "No external disk detected. Plug in a USB drive and try again.",
		"disk.available_disks":        "Available disks:",
		"disk.pick_target":            "Pick the target disk [1-{max}]: ",
		"disk.invalid_range":          "Invalid choice, enter a number between 1 and {max}.",
		"disk.mounted_suffix":         " (mounted)",
		"disk.unmount_warning":        "Warning: could not unmount {disk} cleanly.",
		"disk.unmount_warning_more":   "diskutil will retry the unmount during partitioning.",
		"disk.partitioning":           "Partitioning the disk...",
		"disk.partition_size":         "   {name}: {size} partition",
		"disk.partition_last_remaining": "   {name}: remaining space (~{remaining})",
		"disk.partition_last_all":     "   {name}: all remaining space",
		"disk.partition_fail":         "Partitioning failed: {error}",
		"disk.partition_error_details": "Details: {details}",
		"disk.partition_fail_in_use":  "Partitioning of {disk} failed: the disk is in use.",
		"disk.partition_fail_size_large": "Partitions need {needed_gb} GB but the disk only has {disk_gb} GB.",
		"disk.proc_using":             "The disk is used by process {process_name} (PID {process_id}).",
		"disk.proc_using_generic":     "The disk is used by another process.",
		"disk.solutions":              "Possible solutions:",
		"disk.solution_1":             "   1. Close Finder windows showing this disk",
		"disk.solution_2":             "   2. Close applications using files on this disk",
		"disk.solution_3":             "   3. Eject the disk in Finder, then plug it back in",
		"disk.solution_4_kill":        "   4. Kill the process: sudo kill {process_id}",
		"disk.solution_5_wait":        "   5. Wait a few seconds and try again",
		"disk.partitioning_blocked":   "Partitioning is blocked until the disk is freed.",
		"disk.rerun_after_free":       "Re-run this tool once the disk is no longer in use.",
		"disk.space_available":        "Disk space available: {size_gb} GB",
		"disk.space_needed":           "Space needed: {needed_gb} GB",
		"disk.space_remaining":        "Space remaining after installation: {remaining_gb} GB",
		"disk.warning_small":          "Warning: the disk only has {size_gb} GB.",
		"disk.space_continue_may_fail": "Continuing, but the installation may fail for lack of space.",
		"disk.cannot_check_space":     "Could not check disk space: {error}",
		"disk.space_may_be_insufficient": "Disk space may be insufficient.",
		"disk.internal_warning":       "Warning: {disk} looks like an INTERNAL disk.",
		"disk.internal_warning_more":  "Erasing it would destroy your system. Only continue if you are sure.",
		"disk.internal_confirm":       "Type YES to use this internal disk anyway: ",
		"disk.cannot_check_disk_info": "Could not check disk details: {error}",
		"disk.erase_warning":          "WARNING: ALL data on {disk} will be erased.",
		"disk.erase_warning_more":     "{num} partition(s) will be created.",
		"disk.erase_confirm":          "Type YES to erase the disk and continue: ",
		"disk.restore":                "Restoring {disk} to a single empty volume...",
		"disk.restore_success":        "Disk restored to a single ExFAT volume (USB_DISK).",
		"disk.restore_fail":           "Disk restore failed: {error}",
		"disk.restore_manual":         "Restore it manually with Disk Utility ({disk}).",

		"installer.search_installers": "Looking for installers in {dir}...",
		"installer.dir_missing":       "Directory {dir} does not exist.",
		"installer.not_a_dir":         "{dir} is not a directory.",
		"installer.permission_denied": "Permission denied while reading {dir}.",
		"installer.none_found":        "No macOS installer found.",
		"installer.download_mist":     "Download installers first (for example with Mist), then try again.",
		"installer.found":             "Found: {name}",
		"installer.multiple_found":    "Several bundles match {name}; using {picked}.",
		"installer.invalid_path":      "Ignoring {name}: {path} is not an application bundle.",
		"installer.size_summary":      "Installer sizes:",
		"installer.size_summary_line": "   {name}: {size_gb} GB (+{margin_mb} MB margin = {total_gb} GB)",

		"install_media.creating":        "Creating installation media...",
		"install_media.duration_hint":   "This can take a long time (up to 30 minutes per installer).",
		"install_media.installing":      "Preparing installation media for {name}...",
		"install_media.tool_missing":    "createinstallmedia is missing for {name}.",
		"install_media.tool_expected":   "Expected at: {path}",
		"install_media.tool_not_executable": "createinstallmedia is not executable for {name}.",
		"install_media.timeout_volume":  "Volume {volume} was not mounted after {seconds}s.",
		"install_media.volume_not_found": "Volume {volume} not found for {name}.",
		"install_media.volume_not_accessible": "Volume {path} is not accessible for {name}.",
		"install_media.fail":            "Installation of {name} failed (exit code {code}).",
		"install_media.sigkill_help":    "The process was killed. Possible causes: not enough disk space, corrupted installer, missing permissions, or the system stopped it.",
		"install_media.check_mounted_help": "Check that the target volume is mounted and writable, then try again.",
		"install_media.error_output":    "Tool output: {output}",
		"install_media.success":         "Installation media for {name} created successfully.",
		"install_media.seems_failed":    "The installation does not look successful.",
		"install_media.current_content": "Current volume content: {content}",
		"install_media.volume_path":     "Volume path: {path}",
		"install_media.check_manually":  "Check the volume manually: {path}",
		"install_media.volume_too_small": "Volume only holds {size_mb} MB (expected at least {min_mb} MB).",

		"app.all_done":   "All installation media created. The drive is ready.",
		"app.fatal":      "Fatal error: {error}",
	},
	LanguageFrench: {
		"common.cancelled":              "Opération annulée.",
		"common.cancel_warning_partial": "Attention : le disque peut rester dans un état partiellement modifié.",
		"common.empty":                  "VIDE",
		"common.unknown":                "Inconnu",
		"common.needs_root":             "Cet outil doit être lancé en root (réessayez avec sudo).",
		"common.retries_exceeded":       "Aucune réponse valide après {attempts} tentatives, abandon.",

		"progress.restore":                 "Restauration",
		"progress.partitioning":            "Partitionnement",
		"progress.installation":            "Installation",
		"progress.unmounting_disk":         "Démontage du disque...",
		"progress.creating_partition_table": "Création de la table de partition...",
		"progress.waiting_partitions":      "Activation des partitions...",
		"progress.formatting_partitions":   "Formatage des partitions...",
		"progress.mounting_volumes":        "Montage des volumes...",
		"progress.erasing_partition":       "Suppression de la partition...",
		"progress.formatting_disk":         "Formatage du disque...",
		"progress.creating_partition":      "Création de la partition...",
		"progress.mounting_volume":         "Montage du volume...",
		"progress.done":                    "Terminé !",
		"progress.erasing_volume":          "Effacement du volume...",
		"progress.copying_files":           "Copie des fichiers...",
		"progress.installing":              "Installation en cours...",
		"progress.installing_base_system":  "Installation du système de base...",
		"progress.installing_packages":     "Installation des packages...",

		"disk.search_error":           "Erreur lors de la recherche des disques : {error}",
		"disk.none_detected":          "Aucun disque externe détecté. Branchez une clé USB et réessayez.",
		"disk.available_disks":        "Disques disponibles :",
		"disk.pick_target":            "Choisissez le disque cible [1-{max}] : ",
		"disk.invalid_range":          "Choix invalide, entrez un nombre entre 1 et {max}.",
		"disk.mounted_suffix":         " (monté)",
		"disk.unmount_warning":        "Attention : impossible de démonter {disk} proprement.",
		"disk.unmount_warning_more":   "diskutil réessaiera le démontage pendant le partitionnement.",
		"disk.partitioning":           "Partitionnement du disque...",
		"disk.partition_size":         "   {name} : partition de {size}",
		"disk.partition_last_remaining": "   {name} : espace restant (~{remaining})",
		"disk.partition_last_all":     "   {name} : tout l'espace restant",
		"disk.partition_fail":         "Échec du partitionnement : {error}",
		"disk.partition_error_details": "Détails : {details}",
		"disk.partition_fail_in_use":  "Échec du partitionnement de {disk} : le disque est utilisé.",
		"disk.partition_fail_size_large": "Les partitions nécessitent {needed_gb} GB mais le disque ne fait que {disk_gb} GB.",
		"disk.proc_using":             "Le disque est utilisé par le processus {process_name} (PID {process_id}).",
		"disk.proc_using_generic":     "Le disque est utilisé par un autre processus.",
		"disk.solutions":              "Solutions possibles :",
		"disk.solution_1":             "   1. Fermez les fenêtres du Finder affichant ce disque",
		"disk.solution_2":             "   2. Fermez les applications utilisant des fichiers de ce disque",
		"disk.solution_3":             "   3. Éjectez le disque dans le Finder, puis rebranchez-le",
		"disk.solution_4_kill":        "   4. Tuez le processus : sudo kill {process_id}",
		"disk.solution_5_wait":        "   5. Attendez quelques secondes et réessayez",
		"disk.partitioning_blocked":   "Le partitionnement est bloqué tant que le disque n'est pas libéré.",
		"disk.rerun_after_free":       "Relancez cet outil une fois le disque libéré.",
		"disk.space_available":        "Espace disque disponible : {size_gb} GB",
		"disk.space_needed":           "Espace nécessaire : {needed_gb} GB",
		"disk.space_remaining":        "Espace restant après installation : {remaining_gb} GB",
		"disk.warning_small":          "Attention : le disque ne fait que {size_gb} GB.",
		"disk.space_continue_may_fail": "Poursuite, mais l'installation peut échouer par manque d'espace.",
		"disk.cannot_check_space":     "Impossible de vérifier l'espace disque : {error}",
		"disk.space_may_be_insufficient": "L'espace disque est peut-être insuffisant.",
		"disk.internal_warning":       "Attention : {disk} semble être un disque INTERNE.",
		"disk.internal_warning_more":  "L'effacer détruirait votre système. Ne continuez que si vous êtes sûr.",
		"disk.internal_confirm":       "Tapez YES pour utiliser quand même ce disque interne : ",
		"disk.cannot_check_disk_info": "Impossible de vérifier les détails du disque : {error}",
		"disk.erase_warning":          "ATTENTION : TOUTES les données de {disk} seront effacées.",
		"disk.erase_warning_more":     "{num} partition(s) seront créées.",
		"disk.erase_confirm":          "Tapez YES pour effacer le disque et continuer : ",
		"disk.restore":                "Restauration de {disk} en un volume unique...",
		"disk.restore_success":        "Disque restauré en un volume ExFAT unique (USB_DISK).",
		"disk.restore_fail":           "Échec de la restauration : {error}",
		"disk.restore_manual":         "Restaurez-le manuellement avec Utilitaire de disque ({disk}).",

		"installer.search_installers": "Recherche des installateurs dans {dir}...",
		"installer.dir_missing":       "Le répertoire {dir} n'existe pas.",
		"installer.not_a_dir":         "{dir} n'est pas un répertoire.",
		"installer.permission_denied": "Accès refusé lors de la lecture de {dir}.",
		"installer.none_found":        "Aucun installateur macOS trouvé.",
		"installer.download_mist":     "Téléchargez d'abord les installateurs (par exemple avec Mist), puis réessayez.",
		"installer.found":             "Trouvé : {name}",
		"installer.multiple_found":    "Plusieurs bundles correspondent à {name} ; utilisation de {picked}.",
		"installer.invalid_path":      "{name} ignoré : {path} n'est pas un bundle d'application.",
		"installer.size_summary":      "Tailles des installateurs :",
		"installer.size_summary_line": "   {name} : {size_gb} GB (+{margin_mb} MB de marge = {total_gb} GB)",

		"install_media.creating":        "Création des médias d'installation...",
		"install_media.duration_hint":   "Cela peut être long (jusqu'à 30 minutes par installateur).",
		"install_media.installing":      "Préparation du média d'installation pour {name}...",
		"install_media.tool_missing":    "createinstallmedia est introuvable pour {name}.",
		"install_media.tool_expected":   "Attendu à : {path}",
		"install_media.tool_not_executable": "createinstallmedia n'est pas exécutable pour {name}.",
		"install_media.timeout_volume":  "Le volume {volume} n'a pas été monté après {seconds}s.",
		"install_media.volume_not_found": "Volume {volume} introuvable pour {name}.",
		"install_media.volume_not_accessible": "Le volume {path} n'est pas accessible pour {name}.",
		"install_media.fail":            "Échec de l'installation de {name} (code {code}).",
		"install_media.sigkill_help":    "Le processus a été tué. Causes possibles : espace disque insuffisant, installateur corrompu, permissions manquantes, ou arrêt par le système.",
		"install_media.check_mounted_help": "Vérifiez que le volume cible est monté et accessible en écriture, puis réessayez.",
		"install_media.error_output":    "Sortie de l'outil : {output}",
		"install_media.success":         "Média d'installation pour {name} créé avec succès.",
		"install_media.seems_failed":    "L'installation ne semble pas avoir réussi.",
		"install_media.current_content": "Contenu actuel du volume : {content}",
		"install_media.volume_path":     "Chemin du volume : {path}",
		"install_media.check_manually":  "Vérifiez le volume manuellement : {path}",
		"install_media.volume_too_small": "Le volume ne contient que {size_mb} MB (au moins {min_mb} MB attendus).",

		"app.all_done":   "Tous les médias d'installation ont été créés. Le disque est prêt.",
		"app.fatal":      "Erreur fatale : {error}",
	},
}
